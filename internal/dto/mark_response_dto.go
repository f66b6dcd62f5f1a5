package dto

import "time"

type MarkResponse struct {
	ID            string    `json:"id"`
	StudentID     string    `json:"student"`
	SubjectID     string    `json:"subject"`
	MarksObtained float64   `json:"marksObtained"`
	TotalMarks    float64   `json:"totalMarks"`
	ExamType      string    `json:"examType"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// StudentSummary is the expanded student view returned by GET /marks.
type StudentSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SubjectSummary is the expanded subject view returned by GET /marks.
type SubjectSummary struct {
	ID          string `json:"id"`
	SubjectName string `json:"subjectName"`
}

// MarkDetailResponse is a mark with its student and subject expanded. Either
// reference is null when the referenced record no longer exists.
type MarkDetailResponse struct {
	ID            string          `json:"id"`
	Student       *StudentSummary `json:"student"`
	Subject       *SubjectSummary `json:"subject"`
	MarksObtained float64         `json:"marksObtained"`
	TotalMarks    float64         `json:"totalMarks"`
	ExamType      string          `json:"examType"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

type BulkUploadMarksResponse struct {
	Success    bool           `json:"success"`
	Message    string         `json:"message"`
	SavedMarks []MarkResponse `json:"savedMarks"`
}

type AddMarkResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Marks   MarkResponse `json:"marks"`
}

type UpdateMarkResponse struct {
	Success      bool          `json:"success"`
	Message      string        `json:"message"`
	UpdatedMarks *MarkResponse `json:"updatedMarks"`
}

type GetMarksResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	Marks   []MarkDetailResponse `json:"marks"`
}

type DeleteMarkResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string `json:"status"`
	Store  string `json:"store"`
}

type ErrorResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Kind    string   `json:"kind"`
	Details []string `json:"details,omitempty"`
}
