package report

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
	return &mongoRepository{collection: db.Mongo.Collection("reports")}
}

func (r *mongoRepository) Create(ctx context.Context, report *Report) error {
	_, err := r.collection.InsertOne(ctx, report)
	return err
}

func (r *mongoRepository) Get(ctx context.Context, id string) (*Report, error) {
	var report Report
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&report)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *mongoRepository) List(ctx context.Context, filter Filter) ([]Report, error) {
	query := bson.M{}
	if filter.Department != "" {
		query["department"] = filter.Department
	}
	if filter.Week != "" {
		query["week"] = filter.Week
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.CreatedBefore != nil {
		query["created_at"] = bson.M{"$lt": *filter.CreatedBefore}
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reports := []Report{}
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *mongoRepository) Update(ctx context.Context, id string, upd *Update) (*Report, error) {
	set := bson.M{"updated_at": time.Now()}
	if upd.Week != nil {
		set["week"] = *upd.Week
	}
	if upd.Department != nil {
		set["department"] = *upd.Department
	}
	if upd.Status != nil {
		set["status"] = *upd.Status
	}
	if upd.KPIs != nil {
		set["kpis"] = *upd.KPIs
	}
	if upd.Achievements != nil {
		set["achievements"] = *upd.Achievements
	}
	if upd.Challenges != nil {
		set["challenges"] = *upd.Challenges
	}
	if upd.NextWeekPlans != nil {
		set["next_week_plans"] = *upd.NextWeekPlans
	}
	if upd.Notes != nil {
		set["notes"] = *upd.Notes
	}
	if upd.CreatedBy != nil {
		set["created_by"] = *upd.CreatedBy
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var report Report
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&report)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *mongoRepository) Delete(ctx context.Context, id string) (*Report, error) {
	var report Report
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&report)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *mongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "department", Value: 1}}},
		{Keys: bson.D{{Key: "week", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	})
	return err
}
