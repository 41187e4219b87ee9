package main

import (
	"context"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/domain/models"
	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/domain/services"
)

//go:embed fixtures/foods.yaml
var defaultFixtures []byte

type fixtureFile struct {
	Foods []foodFixture `yaml:"foods"`
}

// foodFixture is one food as written in the fixture file. Owner becomes the
// principal the food is created for; Fields are stored as submitted.
type foodFixture struct {
	Owner    string                 `yaml:"owner"`
	FoodName string                 `yaml:"foodName"`
	Quantity int                    `yaml:"quantity"`
	AddedBy  map[string]interface{} `yaml:"addedBy"`
	Fields   map[string]interface{} `yaml:"fields"`
}

func parseFixtures(data []byte) ([]foodFixture, error) {
	var file fixtureFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}
	for i, f := range file.Foods {
		if f.Owner == "" {
			return nil, fmt.Errorf("fixture %d (%s): owner is required", i, f.FoodName)
		}
	}
	return file.Foods, nil
}

func (f foodFixture) food() *models.Food {
	food := &models.Food{
		FoodName: f.FoodName,
		Quantity: f.Quantity,
		AddedBy:  models.Contributor{Attributes: models.JSONMap{}},
	}
	for k, v := range f.AddedBy {
		if k != "email" {
			food.AddedBy.Attributes[k] = v
		}
	}
	if len(f.Fields) > 0 {
		food.Attributes = models.JSONMap(f.Fields)
	}
	return food
}

// seedFoods creates every fixture through the food service, so the same
// stamping and validation apply as for API requests.
func seedFoods(ctx context.Context, svc services.FoodService, fixtures []foodFixture) (int, error) {
	created := 0
	for _, f := range fixtures {
		principal := &models.Principal{Subject: "seed", Email: f.Owner}
		if _, err := svc.CreateFood(ctx, principal, f.food()); err != nil {
			return created, fmt.Errorf("seed %q: %w", f.FoodName, err)
		}
		created++
	}
	return created, nil
}
