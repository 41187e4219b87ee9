package config

const (
	// MaxFoodNameLength is the maximum length for food names.
	MaxFoodNameLength = 200

	// MaxPurchaseAmount caps a single purchase request.
	MaxPurchaseAmount = 10000

	// MaxContactMessageLength is the maximum length of a contact form message.
	MaxContactMessageLength = 5000

	// MaxRequestBodyBytes limits JSON request bodies.
	MaxRequestBodyBytes = 1 << 20
)
