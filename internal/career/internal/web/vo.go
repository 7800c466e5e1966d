package web

import (
	"time"

	"github.com/ecodeclub/skillbridge/internal/career/internal/domain"
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
}

type Rid struct {
	Rid int64 `json:"rid"`
}

type Aid struct {
	Aid int64 `json:"aid"`
}

type LimitReq struct {
	Limit int `json:"limit,omitempty"`
}

type SaveReq struct {
	Role Role `json:"role"`
}

type SaveRequirementReq struct {
	Requirement Requirement `json:"requirement"`
}

type IDReq struct {
	Id int64 `json:"id"`
}

type SaveQuestionReq struct {
	Question Question `json:"question"`
}

type SubmitReq struct {
	// Options 选中的选项 id
	Options []int64 `json:"options"`
}

type Role struct {
	ID          int64   `json:"id,omitempty"`
	Title       string  `json:"title,omitempty"`
	Overview    string  `json:"overview,omitempty"`
	Category    string  `json:"category,omitempty"`
	SalaryMin   int64   `json:"salaryMin,omitempty"`
	SalaryMax   int64   `json:"salaryMax,omitempty"`
	DemandScore int     `json:"demandScore,omitempty"`
	Growth      float64 `json:"growth,omitempty"`
	Status      uint8   `json:"status,omitempty"`
	// Requirements 详情接口才有
	Requirements []Requirement `json:"requirements,omitempty"`
	Utime        string        `json:"utime,omitempty"`
}

type RoleList struct {
	Total int64  `json:"total,omitempty"`
	Roles []Role `json:"roles,omitempty"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type Requirement struct {
	ID            int64  `json:"id,omitempty"`
	Rid           int64  `json:"rid,omitempty"`
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

type Analysis struct {
	ID                int64      `json:"id"`
	Rid               int64      `json:"rid"`
	RoleTitle         string     `json:"roleTitle"`
	MatchPercentage   float64    `json:"matchPercentage"`
	TotalRequired     int        `json:"totalRequired"`
	MatchedCount      int        `json:"matchedCount"`
	MissingCount      int        `json:"missingCount"`
	InsufficientCount int        `json:"insufficientCount"`
	Readiness         string     `json:"readiness"`
	EstimatedWeeks    int        `json:"estimatedWeeks"`
	Gaps              []SkillGap `json:"gaps,omitempty"`
	Ctime             string     `json:"ctime,omitempty"`
}

type AnalysisList struct {
	Total    int64      `json:"total,omitempty"`
	Analyses []Analysis `json:"analyses,omitempty"`
}

type Recommendation struct {
	Role            Role     `json:"role"`
	Score           float64  `json:"score"`
	MatchPercentage float64  `json:"matchPercentage"`
	Reasons         []string `json:"reasons,omitempty"`
}

type Question struct {
	ID       int64    `json:"id,omitempty"`
	Content  string   `json:"content,omitempty"`
	Sequence int      `json:"sequence,omitempty"`
	Status   uint8    `json:"status,omitempty"`
	Options  []Option `json:"options,omitempty"`
}

type Option struct {
	ID      int64  `json:"id,omitempty"`
	Content string `json:"content,omitempty"`
	// Points C 端列表不下发，避免把计分规则暴露出去
	Points map[string]int `json:"points,omitempty"`
}

type DiscoveryResult struct {
	Categories []string       `json:"categories"`
	Scores     map[string]int `json:"scores,omitempty"`
	Roles      []Role         `json:"roles,omitempty"`
}

func (r Role) toDomain() domain.Role {
	return domain.Role{
		ID:        r.ID,
		Title:     r.Title,
		Overview:  r.Overview,
		Category:  domain.Category(r.Category),
		SalaryMin: r.SalaryMin,
		SalaryMax: r.SalaryMax,
		Growth:    r.Growth,
		Status:    domain.RoleStatus(r.Status),
	}
}

func (r Requirement) toDomain() domain.Requirement {
	return domain.Requirement{
		ID:         r.ID,
		Rid:        r.Rid,
		Sid:        r.Sid,
		Importance: matching.ParseImportance(r.Importance),
		Required:   r.Required,
		MinLevel:   matching.Level(r.MinLevel),
	}
}

func (q Question) toDomain() domain.Question {
	opts := make([]domain.Option, 0, len(q.Options))
	for _, opt := range q.Options {
		opts = append(opts, domain.Option{
			ID:      opt.ID,
			Qid:     q.ID,
			Content: opt.Content,
			Points:  opt.Points,
		})
	}
	return domain.Question{
		ID:       q.ID,
		Content:  q.Content,
		Sequence: q.Sequence,
		Status:   domain.QuestionStatus(q.Status),
		Options:  opts,
	}
}

func newRole(r domain.Role) Role {
	reqs := make([]Requirement, 0, len(r.Requirements))
	for _, req := range r.Requirements {
		reqs = append(reqs, newRequirement(req))
	}
	return Role{
		ID:           r.ID,
		Title:        r.Title,
		Overview:     r.Overview,
		Category:     r.Category.String(),
		SalaryMin:    r.SalaryMin,
		SalaryMax:    r.SalaryMax,
		DemandScore:  r.DemandScore,
		Growth:       r.Growth,
		Status:       r.Status.ToUint8(),
		Requirements: reqs,
		Utime:        r.Utime.Format(time.DateTime),
	}
}

func newRequirement(req domain.Requirement) Requirement {
	return Requirement{
		ID:            req.ID,
		Rid:           req.Rid,
		Sid:           req.Sid,
		SkillName:     req.SkillName,
		SkillCategory: req.SkillCategory,
		Difficulty:    req.Difficulty,
		Importance:    req.Importance.String(),
		Required:      req.Required,
		MinLevel:      req.MinLevel.ToUint8(),
	}
}

func newSkillGap(g matching.SkillGap) SkillGap {
	return SkillGap{
		Sid:            g.SkillID,
		Name:           g.Name,
		Category:       g.Category,
		Difficulty:     g.Difficulty,
		Importance:     g.Importance.String(),
		CurrentLevel:   g.CurrentLevel.ToUint8(),
		TargetLevel:    g.TargetLevel.ToUint8(),
		Insufficient:   g.Insufficient,
		Priority:       g.Priority.String(),
		EstimatedWeeks: g.EstimatedWeeks,
	}
}

func newAnalysis(a domain.Analysis) Analysis {
	gaps := make([]SkillGap, 0, len(a.Gaps))
	for _, g := range a.Gaps {
		gaps = append(gaps, newSkillGap(g))
	}
	return Analysis{
		ID:                a.ID,
		Rid:               a.Rid,
		RoleTitle:         a.RoleTitle,
		MatchPercentage:   a.MatchPercentage,
		TotalRequired:     a.TotalRequired,
		MatchedCount:      a.MatchedCount,
		MissingCount:      a.MissingCount,
		InsufficientCount: a.InsufficientCount,
		Readiness:         string(a.Readiness),
		EstimatedWeeks:    a.EstimatedWeeks,
		Gaps:              gaps,
		Ctime:             a.Ctime.Format(time.DateTime),
	}
}

func newRecommendation(rec domain.Recommendation) Recommendation {
	role := rec.Role
	// 推荐列表不铺要求明细，想看的走详情
	role.Requirements = nil
	return Recommendation{
		Role:            newRole(role),
		Score:           rec.Score,
		MatchPercentage: rec.MatchPercentage,
		Reasons:         rec.Reasons,
	}
}

func newQuestion(q domain.Question, withPoints bool) Question {
	opts := make([]Option, 0, len(q.Options))
	for _, opt := range q.Options {
		o := Option{
			ID:      opt.ID,
			Content: opt.Content,
		}
		if withPoints {
			o.Points = opt.Points
		}
		opts = append(opts, o)
	}
	return Question{
		ID:       q.ID,
		Content:  q.Content,
		Sequence: q.Sequence,
		Status:   q.Status.ToUint8(),
		Options:  opts,
	}
}
