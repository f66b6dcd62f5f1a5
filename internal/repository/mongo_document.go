package repository

import (
	"fmt"
	"time"

	"github.com/lshigami/gradebook/internal/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// mongoID returns the value stored in _id (or a reference field) for id.
// Records written by the registry services are keyed by ObjectID, so a
// 24-character hex id is matched as one; anything else is a plain string.
func mongoID(id string) interface{} {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return oid
	}
	return id
}

func mongoIDs(ids []string) []interface{} {
	out := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		out = append(out, mongoID(id))
	}
	return out
}

// idString is the inverse of mongoID.
func idString(v interface{}) string {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	case nil:
		return ""
	default:
		return fmt.Sprint(id)
	}
}

type markDocument struct {
	ID            interface{} `bson:"_id"`
	Student       interface{} `bson:"student"`
	Subject       interface{} `bson:"subject"`
	MarksObtained float64     `bson:"marksObtained"`
	TotalMarks    float64     `bson:"totalMarks"`
	ExamType      string      `bson:"examType"`
	CreatedAt     time.Time   `bson:"createdAt"`
	UpdatedAt     time.Time   `bson:"updatedAt"`
}

func newMarkDocument(mark *model.Mark) markDocument {
	return markDocument{
		ID:            mongoID(mark.ID),
		Student:       mongoID(mark.StudentID),
		Subject:       mongoID(mark.SubjectID),
		MarksObtained: mark.MarksObtained,
		TotalMarks:    mark.TotalMarks,
		ExamType:      mark.ExamType,
		CreatedAt:     mark.CreatedAt,
		UpdatedAt:     mark.UpdatedAt,
	}
}

func (d markDocument) toModel() model.Mark {
	return model.Mark{
		ID:            idString(d.ID),
		StudentID:     idString(d.Student),
		SubjectID:     idString(d.Subject),
		MarksObtained: d.MarksObtained,
		TotalMarks:    d.TotalMarks,
		ExamType:      d.ExamType,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

type studentDocument struct {
	ID    interface{} `bson:"_id"`
	Name  string      `bson:"name"`
	Email string      `bson:"email"`
}

func (d studentDocument) toModel() model.Student {
	return model.Student{ID: idString(d.ID), Name: d.Name, Email: d.Email}
}

type subjectDocument struct {
	ID          interface{} `bson:"_id"`
	SubjectName string      `bson:"subjectName"`
}

func (d subjectDocument) toModel() model.Subject {
	return model.Subject{ID: idString(d.ID), SubjectName: d.SubjectName}
}
