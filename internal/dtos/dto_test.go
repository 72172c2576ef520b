package dtos

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/justsurfingit/job-platform/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicationDTORoundTrip(t *testing.T) {
	applied := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	in := ApplicationDTO{
		ID:             42,
		EmployeeEmail:  "a@x.com",
		EmployeeName:   "Ada",
		RecruiterEmail: "r@corp.com",
		JobID:          7,
		JobTitle:       "Backend Engineer",
		CompanyName:    "Corp",
		Status:         models.StatusAccepted,
		AppliedDate:    &applied,
	}

	raw, err := json.Marshal(in)
	require.NoError(t, err)

	var out ApplicationDTO
	require.NoError(t, json.Unmarshal(raw, &out))
	require.NotNil(t, out.AppliedDate)
	assert.True(t, applied.Equal(*out.AppliedDate))
	out.AppliedDate = in.AppliedDate
	assert.Equal(t, in, out)
}

func TestApplicationDTOWireNames(t *testing.T) {
	raw, err := json.Marshal(ApplicationDTO{EmployeeEmail: "a@x.com", JobID: 7, Status: models.StatusPending})
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.Equal(t, "a@x.com", fields["employeeEmail"])
	assert.EqualValues(t, 7, fields["jobId"])
	assert.Equal(t, "PENDING", fields["status"])
}

func TestApplicationDTOAcceptsApplicantEmail(t *testing.T) {
	var dto ApplicationDTO
	require.NoError(t, json.Unmarshal([]byte(`{"applicantEmail":"a@x.com","jobId":7}`), &dto))
	assert.Equal(t, "a@x.com", dto.EmployeeEmail)
	assert.EqualValues(t, 7, dto.JobID)

	// employeeEmail wins when both are sent
	require.NoError(t, json.Unmarshal([]byte(`{"applicantEmail":"x@x.com","employeeEmail":"e@x.com","jobId":1}`), &dto))
	assert.Equal(t, "e@x.com", dto.EmployeeEmail)
}

func TestUpdateStatusDTORoundTrip(t *testing.T) {
	in := NewUpdateApplicationStatusDTO(3, models.StatusRejected)
	raw, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"applicationId":3,"status":"REJECTED"}`, string(raw))

	var out UpdateApplicationStatusDTO
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, in, out)
}

func TestAuthDTOs(t *testing.T) {
	id := int64(9)
	reg := NewRegisterRequest(&id, "Ada", "a@x.com", "secret1", models.RoleRecruiter)
	raw, err := json.Marshal(reg)
	require.NoError(t, err)
	var regOut RegisterRequest
	require.NoError(t, json.Unmarshal(raw, &regOut))
	assert.Equal(t, reg, regOut)

	resp := NewAuthResponse("tok", "a@x.com", "Ada", models.RoleEmployee)
	raw, err = json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"token":"tok","email":"a@x.com","name":"Ada","role":"EMPLOYEE"}`, string(raw))

	var zero LoginRequest
	assert.Empty(t, zero.Email)
	assert.Equal(t, LoginRequest{Email: "a@x.com", Password: "p"}, NewLoginRequest("a@x.com", "p"))
}

func TestNewJobPostDTOFormatsDeadline(t *testing.T) {
	deadline := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)
	dto := NewJobPostDTO(models.JobPost{
		ID:             5,
		Title:          "SRE",
		CompanyName:    "Corp",
		JobType:        models.JobTypeContract,
		DeadlineDate:   &deadline,
		RecruiterEmail: "r@corp.com",
	})
	assert.Equal(t, "2026-12-01", dto.DeadLineDate)
	assert.Empty(t, dto.PostedDate)

	dto = NewJobPostDTO(models.JobPost{CreatedAt: time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC)})
	assert.Equal(t, "2026-10-15", dto.PostedDate)
	assert.Equal(t, "SRE", dto.JobTitle)
	assert.EqualValues(t, 5, dto.ID)
}

func TestJobPostDTOAcceptsDateOnlyPostedDate(t *testing.T) {
	body := `{"jobTitle":"SRE","companyName":"Corp","jobType":"FULL_TIME","jobDescription":"",` +
		`"jobLocation":"Remote","deadLineDate":"","recruiterEmail":"r@corp.com","postedDate":"2026-10-15"}`

	var dto JobPostDTO
	require.NoError(t, json.Unmarshal([]byte(body), &dto))
	assert.Equal(t, "SRE", dto.JobTitle)
	assert.Equal(t, "2026-10-15", dto.PostedDate)
}
