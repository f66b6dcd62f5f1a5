package repository

import (
	"context"
	"errors"

	"github.com/lshigami/gradebook/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type subjectMongoRepository struct {
	subjects *mongo.Collection
}

func NewSubjectMongoRepository(db *mongo.Database) SubjectRepository {
	return &subjectMongoRepository{subjects: db.Collection(SubjectsCollection)}
}

func (r *subjectMongoRepository) FindByID(ctx context.Context, id string) (*model.Subject, error) {
	var doc subjectDocument
	err := r.subjects.FindOne(ctx, bson.M{"_id": mongoID(id)}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	subject := doc.toModel()
	return &subject, nil
}
