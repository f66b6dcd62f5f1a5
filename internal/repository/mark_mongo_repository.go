package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lshigami/gradebook/internal/model"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	MarksCollection    = "marks"
	StudentsCollection = "students"
	SubjectsCollection = "subjects"
)

type markMongoRepository struct {
	marks    *mongo.Collection
	students *mongo.Collection
	subjects *mongo.Collection
}

func NewMarkMongoRepository(db *mongo.Database) MarkRepository {
	return &markMongoRepository{
		marks:    db.Collection(MarksCollection),
		students: db.Collection(StudentsCollection),
		subjects: db.Collection(SubjectsCollection),
	}
}

// EnsureMarkIndexes creates the lookup indexes used by Find.
func EnsureMarkIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(MarksCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "student", Value: 1}}},
		{Keys: bson.D{{Key: "subject", Value: 1}}},
		{Keys: bson.D{{Key: "examType", Value: 1}}},
	})
	return err
}

// mongo stores millisecond precision; truncate so returned values match what
// a later read yields.
func mongoNow() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func stampNew(mark *model.Mark, now time.Time) {
	if mark.ID == "" {
		mark.ID = model.NewID()
	}
	mark.CreatedAt = now
	mark.UpdatedAt = now
}

func (r *markMongoRepository) Create(ctx context.Context, mark *model.Mark) error {
	stampNew(mark, mongoNow())
	_, err := r.marks.InsertOne(ctx, newMarkDocument(mark))
	return err
}

func (r *markMongoRepository) CreateBatch(ctx context.Context, marks []*model.Mark) error {
	if len(marks) == 0 {
		return nil
	}
	now := mongoNow()
	docs := make([]interface{}, 0, len(marks))
	ids := make([]interface{}, 0, len(marks))
	for _, mark := range marks {
		stampNew(mark, now)
		doc := newMarkDocument(mark)
		docs = append(docs, doc)
		ids = append(ids, doc.ID)
	}
	return insertAllOrNothing(ctx, r.marks, docs, ids)
}

// batchWriter is the part of *mongo.Collection used by insertAllOrNothing.
type batchWriter interface {
	InsertMany(ctx context.Context, documents []interface{}, opts ...*options.InsertManyOptions) (*mongo.InsertManyResult, error)
	DeleteMany(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error)
}

// insertAllOrNothing runs an ordered InsertMany. Standalone servers have no
// multi-document transactions, so on failure the ids of this batch are
// deleted again. The delete ignores cancellation of ctx.
func insertAllOrNothing(ctx context.Context, coll batchWriter, docs []interface{}, ids []interface{}) error {
	_, err := coll.InsertMany(ctx, docs)
	if err == nil {
		return nil
	}
	res, delErr := coll.DeleteMany(context.WithoutCancel(ctx), bson.M{"_id": bson.M{"$in": ids}})
	if delErr != nil {
		log.Error().Err(delErr).Interface("markIDs", ids).Msg("Failed to roll back partially inserted marks batch")
		return fmt.Errorf("insert marks batch: %w (rollback failed: %v)", err, delErr)
	}
	log.Warn().Err(err).Int64("rolledBack", res.DeletedCount).Msg("Marks batch insert failed, partial batch removed")
	return fmt.Errorf("insert marks batch: %w", err)
}

// markFilterDocument builds the query for Find; absent filters are omitted.
func markFilterDocument(filter MarkFilter) bson.D {
	doc := bson.D{}
	if filter.StudentID != "" {
		doc = append(doc, bson.E{Key: "student", Value: mongoID(filter.StudentID)})
	}
	if filter.SubjectID != "" {
		doc = append(doc, bson.E{Key: "subject", Value: mongoID(filter.SubjectID)})
	}
	if filter.ExamType != "" {
		doc = append(doc, bson.E{Key: "examType", Value: filter.ExamType})
	}
	return doc
}

// markSetDocument builds the $set payload for UpdateByID.
func markSetDocument(update MarkUpdate, now time.Time) bson.D {
	set := bson.D{}
	if update.MarksObtained != nil {
		set = append(set, bson.E{Key: "marksObtained", Value: *update.MarksObtained})
	}
	if update.TotalMarks != nil {
		set = append(set, bson.E{Key: "totalMarks", Value: *update.TotalMarks})
	}
	if update.ExamType != nil {
		set = append(set, bson.E{Key: "examType", Value: *update.ExamType})
	}
	return append(set, bson.E{Key: "updatedAt", Value: now})
}

func (r *markMongoRepository) Find(ctx context.Context, filter MarkFilter) ([]model.Mark, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	var docs []markDocument
	if err := findAll(ctx, r.marks, markFilterDocument(filter), &docs, opts); err != nil {
		return nil, err
	}
	marks := make([]model.Mark, 0, len(docs))
	for _, d := range docs {
		marks = append(marks, d.toModel())
	}
	if err := r.populate(ctx, marks); err != nil {
		return nil, err
	}
	return marks, nil
}

// populate attaches the student and subject summaries with one query per
// collection.
func (r *markMongoRepository) populate(ctx context.Context, marks []model.Mark) error {
	if len(marks) == 0 {
		return nil
	}
	studentIDs := make([]string, 0, len(marks))
	subjectIDs := make([]string, 0, len(marks))
	seenStudents := make(map[string]bool)
	seenSubjects := make(map[string]bool)
	for _, m := range marks {
		if !seenStudents[m.StudentID] {
			seenStudents[m.StudentID] = true
			studentIDs = append(studentIDs, m.StudentID)
		}
		if !seenSubjects[m.SubjectID] {
			seenSubjects[m.SubjectID] = true
			subjectIDs = append(subjectIDs, m.SubjectID)
		}
	}

	var students []studentDocument
	studentOpts := options.Find().SetProjection(bson.D{{Key: "name", Value: 1}, {Key: "email", Value: 1}})
	if err := findAll(ctx, r.students, bson.M{"_id": bson.M{"$in": mongoIDs(studentIDs)}}, &students, studentOpts); err != nil {
		return fmt.Errorf("populate students: %w", err)
	}
	var subjects []subjectDocument
	subjectOpts := options.Find().SetProjection(bson.D{{Key: "subjectName", Value: 1}})
	if err := findAll(ctx, r.subjects, bson.M{"_id": bson.M{"$in": mongoIDs(subjectIDs)}}, &subjects, subjectOpts); err != nil {
		return fmt.Errorf("populate subjects: %w", err)
	}

	studentByID := make(map[string]*model.Student, len(students))
	for _, d := range students {
		st := d.toModel()
		studentByID[st.ID] = &st
	}
	subjectByID := make(map[string]*model.Subject, len(subjects))
	for _, d := range subjects {
		sub := d.toModel()
		subjectByID[sub.ID] = &sub
	}
	for i := range marks {
		marks[i].Student = studentByID[marks[i].StudentID]
		marks[i].Subject = subjectByID[marks[i].SubjectID]
	}
	return nil
}

func (r *markMongoRepository) UpdateByID(ctx context.Context, id string, update MarkUpdate) (*model.Mark, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc markDocument
	err := r.marks.FindOneAndUpdate(ctx,
		bson.M{"_id": mongoID(id)},
		bson.M{"$set": markSetDocument(update, mongoNow())},
		opts,
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	mark := doc.toModel()
	return &mark, nil
}

func (r *markMongoRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	res, err := r.marks.DeleteOne(ctx, bson.M{"_id": mongoID(id)})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func findAll(ctx context.Context, coll *mongo.Collection, filter interface{}, out interface{}, opts ...*options.FindOptions) error {
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return err
	}
	return cursor.All(ctx, out)
}
