package task

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
	return &mongoRepository{collection: db.Mongo.Collection("tasks")}
}

func (r *mongoRepository) Create(ctx context.Context, task *Task) error {
	_, err := r.collection.InsertOne(ctx, task)
	return err
}

func (r *mongoRepository) Get(ctx context.Context, id string) (*Task, error) {
	var task Task
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&task)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *mongoRepository) List(ctx context.Context, filter Filter) ([]Task, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Assignee != "" {
		query["assignee"] = filter.Assignee
	}
	if filter.Priority != "" {
		query["priority"] = filter.Priority
	}

	cursor, err := r.collection.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	tasks := []Task{}
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *mongoRepository) Update(ctx context.Context, id string, upd *Update) (*Task, error) {
	set := bson.M{"updated_at": time.Now()}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Status != nil {
		set["status"] = *upd.Status
	}
	if upd.Priority != nil {
		set["priority"] = *upd.Priority
	}
	if upd.Assignee != nil {
		set["assignee"] = *upd.Assignee
	}
	if upd.Department != nil {
		set["department"] = *upd.Department
	}
	if upd.DueDate != nil {
		set["due_date"] = *upd.DueDate
	}
	if upd.ReportID != nil {
		set["report_id"] = *upd.ReportID
	}
	if upd.completedAt != nil {
		set["completed_at"] = *upd.completedAt
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var task Task
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&task)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *mongoRepository) Delete(ctx context.Context, id string) (*Task, error) {
	var task Task
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&task)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *mongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "assignee", Value: 1}}},
		{Keys: bson.D{{Key: "due_date", Value: 1}}},
		{Keys: bson.D{{Key: "report_id", Value: 1}}},
	})
	return err
}
