package event

import (
	"encoding/json"

	"github.com/ecodeclub/skillbridge/internal/job/internal/domain"
)

type JobEvent struct {
	Biz   string `json:"biz"`
	BizID int64  `json:"bizID"`
	Data  string `json:"data"`
}

type Job struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Company   string `json:"company"`
	Location  string `json:"location"`
	Remote    bool   `json:"remote"`
	Category  string `json:"category"`
	Rid       int64  `json:"rid"`
	SalaryMin int64  `json:"salaryMin"`
	SalaryMax int64  `json:"salaryMax"`
	Level     string `json:"level"`
	Status    uint8  `json:"status"`
	Source    string `json:"source"`
	URL       string `json:"url"`
	Summary   string `json:"summary"`
	PostedAt  int64  `json:"postedAt"`
	ExpiresAt int64  `json:"expiresAt"`
	Ctime     int64  `json:"ctime"`
	Utime     int64  `json:"utime"`
}

func newJob(j domain.Job) Job {
	res := Job{
		ID:        j.ID,
		Title:     j.Title,
		Company:   j.Company,
		Location:  j.Location,
		Remote:    j.Remote,
		Category:  j.Category,
		Rid:       j.Rid,
		SalaryMin: j.SalaryMin,
		SalaryMax: j.SalaryMax,
		Level:     j.Level.String(),
		Status:    j.Status.ToUint8(),
		Source:    j.Source,
		URL:       j.URL,
		Summary:   j.Summary,
		PostedAt:  j.PostedAt.UnixMilli(),
		Ctime:     j.Ctime.UnixMilli(),
		Utime:     j.Utime.UnixMilli(),
	}
	if !j.ExpiresAt.IsZero() {
		res.ExpiresAt = j.ExpiresAt.UnixMilli()
	}
	return res
}

func NewJobEvent(j domain.Job) JobEvent {
	data, _ := json.Marshal(newJob(j))
	return JobEvent{
		Biz:   "job",
		BizID: j.ID,
		Data:  string(data),
	}
}
