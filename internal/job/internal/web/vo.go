package web

import (
	"time"

	"github.com/ecodeclub/skillbridge/internal/job/internal/domain"
	"github.com/ecodeclub/skillbridge/internal/matching"
)

type Page struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ListReq struct {
	Page
	// Category 可选，只看某个类别
	Category string `json:"category,omitempty"`
	// RemoteOnly 只看远程岗位
	RemoteOnly bool `json:"remoteOnly,omitempty"`
}

type IDReq struct {
	Id int64 `json:"id"`
}

type Jid struct {
	Jid int64 `json:"jid"`
}

type FreshReq struct {
	// Days 最近几天，默认 7，最多 30
	Days  int `json:"days,omitempty"`
	Limit int `json:"limit,omitempty"`
}

type LimitReq struct {
	Limit int `json:"limit,omitempty"`
}

type SaveReq struct {
	Job Job `json:"job"`
}

type SaveSkillReq struct {
	Skill JobSkill `json:"skill"`
}

type Job struct {
	ID        int64  `json:"id,omitempty"`
	Title     string `json:"title,omitempty"`
	Company   string `json:"company,omitempty"`
	Location  string `json:"location,omitempty"`
	Remote    bool   `json:"remote"`
	Category  string `json:"category,omitempty"`
	Rid       int64  `json:"rid,omitempty"`
	SalaryMin int64  `json:"salaryMin,omitempty"`
	SalaryMax int64  `json:"salaryMax,omitempty"`
	// Level 取 junior mid senior lead
	Level   string `json:"level,omitempty"`
	Status  uint8  `json:"status,omitempty"`
	Source  string `json:"source,omitempty"`
	URL     string `json:"url,omitempty"`
	Summary string `json:"summary,omitempty"`
	// Skills 详情接口才有
	Skills    []JobSkill `json:"skills,omitempty"`
	PostedAt  string     `json:"postedAt,omitempty"`
	ExpiresAt string     `json:"expiresAt,omitempty"`
	Utime     string     `json:"utime,omitempty"`
}

type JobList struct {
	Total int64 `json:"total,omitempty"`
	Jobs  []Job `json:"jobs,omitempty"`
}

type JobSkill struct {
	ID            int64  `json:"id,omitempty"`
	Jid           int64  `json:"jid,omitempty"`
	Sid           int64  `json:"sid,omitempty"`
	SkillName     string `json:"skillName,omitempty"`
	SkillCategory string `json:"skillCategory,omitempty"`
	Difficulty    uint8  `json:"difficulty,omitempty"`
	// Importance 取 high medium low
	Importance string `json:"importance,omitempty"`
	Required   bool   `json:"required"`
	// MinLevel 等级档位 1 到 4
	MinLevel uint8 `json:"minLevel,omitempty"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type Recommendation struct {
	Job             Job      `json:"job"`
	Score           float64  `json:"score"`
	MatchPercentage float64  `json:"matchPercentage"`
	Reasons         []string `json:"reasons,omitempty"`
}

type SkillGap struct {
	Sid            int64  `json:"sid"`
	Name           string `json:"name,omitempty"`
	Category       string `json:"category,omitempty"`
	Difficulty     uint8  `json:"difficulty,omitempty"`
	Importance     string `json:"importance,omitempty"`
	CurrentLevel   uint8  `json:"currentLevel,omitempty"`
	TargetLevel    uint8  `json:"targetLevel"`
	Insufficient   bool   `json:"insufficient,omitempty"`
	Priority       string `json:"priority"`
	EstimatedWeeks int    `json:"estimatedWeeks"`
}

type Match struct {
	Job               Job        `json:"job"`
	MatchPercentage   float64    `json:"matchPercentage"`
	TotalRequired     int        `json:"totalRequired"`
	MatchedCount      int        `json:"matchedCount"`
	MissingCount      int        `json:"missingCount"`
	InsufficientCount int        `json:"insufficientCount"`
	Readiness         string     `json:"readiness"`
	EstimatedWeeks    int        `json:"estimatedWeeks"`
	Gaps              []SkillGap `json:"gaps,omitempty"`
}

func (j Job) toDomain() domain.Job {
	res := domain.Job{
		ID:        j.ID,
		Title:     j.Title,
		Company:   j.Company,
		Location:  j.Location,
		Remote:    j.Remote,
		Category:  j.Category,
		Rid:       j.Rid,
		SalaryMin: j.SalaryMin,
		SalaryMax: j.SalaryMax,
		Level:     domain.Seniority(j.Level),
		Status:    domain.JobStatus(j.Status),
		Source:    j.Source,
		URL:       j.URL,
		Summary:   j.Summary,
	}
	if j.PostedAt != "" {
		if t, err := time.Parse(time.DateTime, j.PostedAt); err == nil {
			res.PostedAt = t
		}
	}
	if j.ExpiresAt != "" {
		if t, err := time.Parse(time.DateTime, j.ExpiresAt); err == nil {
			res.ExpiresAt = t
		}
	}
	return res
}

func (sk JobSkill) toDomain() domain.JobSkill {
	return domain.JobSkill{
		ID:         sk.ID,
		Jid:        sk.Jid,
		Sid:        sk.Sid,
		Importance: matching.ParseImportance(sk.Importance),
		Required:   sk.Required,
		MinLevel:   matching.Level(sk.MinLevel),
	}
}

func newJob(j domain.Job) Job {
	sks := make([]JobSkill, 0, len(j.Skills))
	for _, sk := range j.Skills {
		sks = append(sks, newJobSkill(sk))
	}
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
		Skills:    sks,
		PostedAt:  j.PostedAt.Format(time.DateTime),
		Utime:     j.Utime.Format(time.DateTime),
	}
	if !j.ExpiresAt.IsZero() {
		res.ExpiresAt = j.ExpiresAt.Format(time.DateTime)
	}
	return res
}

func newJobSkill(sk domain.JobSkill) JobSkill {
	return JobSkill{
		ID:            sk.ID,
		Jid:           sk.Jid,
		Sid:           sk.Sid,
		SkillName:     sk.SkillName,
		SkillCategory: sk.SkillCategory,
		Difficulty:    sk.Difficulty,
		Importance:    sk.Importance.String(),
		Required:      sk.Required,
		MinLevel:      sk.MinLevel.ToUint8(),
	}
}

func newMatch(m domain.Match) Match {
	gaps := make([]SkillGap, 0, len(m.Result.Gaps))
	for _, gap := range m.Result.Gaps {
		gaps = append(gaps, newSkillGap(gap))
	}
	return Match{
		Job:               newJob(m.Job),
		MatchPercentage:   m.Result.Percentage,
		TotalRequired:     m.Result.TotalRequired,
		MatchedCount:      m.Result.MatchedCount,
		MissingCount:      m.Result.MissingCount,
		InsufficientCount: m.Result.InsufficientCount,
		Readiness:         string(m.Readiness),
		EstimatedWeeks:    m.EstimatedWeeks,
		Gaps:              gaps,
	}
}

func newSkillGap(gap matching.SkillGap) SkillGap {
	return SkillGap{
		Sid:            gap.SkillID,
		Name:           gap.Name,
		Category:       gap.Category,
		Difficulty:     gap.Difficulty,
		Importance:     gap.Importance.String(),
		CurrentLevel:   gap.CurrentLevel.ToUint8(),
		TargetLevel:    gap.TargetLevel.ToUint8(),
		Insufficient:   gap.Insufficient,
		Priority:       gap.Priority.String(),
		EstimatedWeeks: gap.EstimatedWeeks,
	}
}
