package dto

// MarkEntryRequest is one student's score inside a bulk upload.
type MarkEntryRequest struct {
	StudentID     string   `json:"studentId" validate:"required"`
	MarksObtained *float64 `json:"marksObtained" validate:"required"`
	TotalMarks    *float64 `json:"totalMarks" validate:"required"`
}

// BulkUploadMarksRequest uploads marks for many students sharing one subject and exam type.
type BulkUploadMarksRequest struct {
	SubjectID string             `json:"subjectId" example:"7f0c3a52-6a1e-4c1e-9d7e-2b7f3c1a9e10"`
	MarksData []MarkEntryRequest `json:"marksData" validate:"dive"`
	ExamType  string             `json:"examType" example:"final"`
}

// AddMarkRequest creates a single mark. Numeric fields are pointers so that an
// explicit 0 counts as provided.
type AddMarkRequest struct {
	StudentID     string   `json:"studentId" validate:"required"`
	SubjectID     string   `json:"subjectId" validate:"required"`
	MarksObtained *float64 `json:"marksObtained" validate:"required"`
	TotalMarks    *float64 `json:"totalMarks" validate:"required"`
	ExamType      string   `json:"examType" validate:"required"`
}

// UpdateMarkRequest carries a partial update; nil fields are left untouched.
type UpdateMarkRequest struct {
	MarksObtained *float64 `json:"marksObtained"`
	TotalMarks    *float64 `json:"totalMarks"`
	ExamType      *string  `json:"examType"`
}

// MarkQuery filters GET /marks. Empty values are ignored.
type MarkQuery struct {
	StudentID string `form:"studentId"`
	SubjectID string `form:"subjectId"`
	ExamType  string `form:"examType"`
}
