package template

import (
	"context"
	"errors"
	"time"

	"ews-reports/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoRepository struct {
	collection *mongo.Collection
}

func newMongoRepository(db *database.Database) *mongoRepository {
	return &mongoRepository{collection: db.Mongo.Collection("templates")}
}

func (r *mongoRepository) Create(ctx context.Context, template *Template) error {
	_, err := r.collection.InsertOne(ctx, template)
	return err
}

func (r *mongoRepository) List(ctx context.Context) ([]Template, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	templates := []Template{}
	if err := cursor.All(ctx, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *mongoRepository) Update(ctx context.Context, id string, upd *Update) (*Template, error) {
	set := bson.M{"updated_at": time.Now()}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Department != nil {
		set["department"] = *upd.Department
	}
	if upd.Content != nil {
		set["content"] = *upd.Content
	}
	if upd.IsDefault != nil {
		set["is_default"] = *upd.IsDefault
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var template Template
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&template)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &template, nil
}

func (r *mongoRepository) Delete(ctx context.Context, id string) (*Template, error) {
	var template Template
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&template)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &template, nil
}
