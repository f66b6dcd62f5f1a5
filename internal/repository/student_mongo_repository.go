package repository

import (
	"context"

	"github.com/lshigami/gradebook/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type studentMongoRepository struct {
	students *mongo.Collection
}

func NewStudentMongoRepository(db *mongo.Database) StudentRepository {
	return &studentMongoRepository{students: db.Collection(StudentsCollection)}
}

func (r *studentMongoRepository) FindByIDs(ctx context.Context, ids []string) ([]model.Student, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var docs []studentDocument
	if err := findAll(ctx, r.students, bson.M{"_id": bson.M{"$in": mongoIDs(ids)}}, &docs); err != nil {
		return nil, err
	}
	students := make([]model.Student, 0, len(docs))
	for _, d := range docs {
		students = append(students, d.toModel())
	}
	return students, nil
}
