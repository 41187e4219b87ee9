package mongodb

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func optionsFind(sort bson.D) *options.FindOptions {
	opts := options.Find()
	if len(sort) > 0 {
		opts.SetSort(sort)
	}
	return opts
}

func optionsIDOnly() *options.FindOneOptions {
	return options.FindOne().SetProjection(bson.D{{Key: "_id", Value: 1}})
}
