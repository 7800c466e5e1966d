package web

import (
	"time"

	"github.com/ecodeclub/skillbridge/internal/career"
	"github.com/ecodeclub/skillbridge/internal/job"
	"github.com/ecodeclub/skillbridge/internal/roadmap"
)

type CollectedJobsReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type Dashboard struct {
	Profile Profile `json:"profile"`
	Skills  SkillSummary `json:"skills"`
	// Roadmap 没有激活的路线时为 null
	Roadmap *ActiveRoadmap `json:"roadmap,omitempty"`
	// Analysis 还没做过差距分析时为 null
	Analysis        *AnalysisSummary `json:"analysis,omitempty"`
	Recommendations []Recommendation `json:"recommendations,omitempty"`
	UnreadCnt       int64            `json:"unreadCnt"`
}

type Profile struct {
	Nickname        string `json:"nickname,omitempty"`
	Avatar          string `json:"avatar,omitempty"`
	CurrentTitle    string `json:"currentTitle,omitempty"`
	ExperienceYears uint8  `json:"experienceYears,omitempty"`
	TargetRid       int64  `json:"targetRid,omitempty"`
	TargetRole      string `json:"targetRole,omitempty"`
}

type SkillSummary struct {
	Learning int `json:"learning"`
	Acquired int `json:"acquired"`
}

type ActiveRoadmap struct {
	ID            int64   `json:"id"`
	SN            string  `json:"sn"`
	RoleTitle     string  `json:"roleTitle"`
	Progress      float64 `json:"progress"`
	TotalWeeks    int     `json:"totalWeeks"`
	EstimatedDone string  `json:"estimatedDone,omitempty"`
	// Done 为 true 表示路线上已经没有待学的项了
	Done bool      `json:"done"`
	Next *NextItem `json:"next,omitempty"`
}

type NextItem struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category,omitempty"`
	TargetLevel uint8  `json:"targetLevel"`
	Sequence    int    `json:"sequence"`
	// EstimatedWeeks 单项预估周数
	EstimatedWeeks int `json:"estimatedWeeks,omitempty"`
}

type AnalysisSummary struct {
	ID              int64   `json:"id"`
	Rid             int64   `json:"rid"`
	RoleTitle       string  `json:"roleTitle"`
	MatchPercentage float64 `json:"matchPercentage"`
	Readiness       string  `json:"readiness"`
	EstimatedWeeks  int     `json:"estimatedWeeks"`
	Ctime           string  `json:"ctime,omitempty"`
}

type Recommendation struct {
	Rid             int64    `json:"rid"`
	Title           string   `json:"title"`
	Category        string   `json:"category,omitempty"`
	Score           float64  `json:"score"`
	MatchPercentage float64  `json:"matchPercentage"`
	Reasons         []string `json:"reasons,omitempty"`
}

type CollectedJob struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Company   string `json:"company"`
	Location  string `json:"location,omitempty"`
	Remote    bool   `json:"remote"`
	Category  string `json:"category,omitempty"`
	SalaryMin int64  `json:"salaryMin,omitempty"`
	SalaryMax int64  `json:"salaryMax,omitempty"`
	Level     string `json:"level,omitempty"`
	Status    uint8  `json:"status"`
	PostedAt  string `json:"postedAt,omitempty"`
}

type CollectedJobList struct {
	Jobs []CollectedJob `json:"jobs,omitempty"`
}

type Statistics struct {
	// SkillCategories 类别 => 收录技能数
	SkillCategories map[string]int64 `json:"skillCategories,omitempty"`
	ActiveRoles     int64            `json:"activeRoles"`
	ActiveJobs      int64            `json:"activeJobs"`
	Roadmaps        int64            `json:"roadmaps"`
	// CompletionRate 全站学习项完成率，0 到 100
	CompletionRate float64 `json:"completionRate"`
}

func newActiveRoadmap(r roadmap.Roadmap, next roadmap.NextItem) *ActiveRoadmap {
	res := &ActiveRoadmap{
		ID:         r.ID,
		SN:         r.SN,
		RoleTitle:  r.RoleTitle,
		Progress:   r.Progress,
		TotalWeeks: r.TotalWeeks,
		Done:       next.Done,
	}
	if !r.EstimatedDone.IsZero() {
		res.EstimatedDone = r.EstimatedDone.Format(time.DateTime)
	}
	if !next.Done {
		res.Next = &NextItem{
			ID:             next.Item.ID,
			Name:           next.Item.Name,
			Category:       next.Item.Category,
			TargetLevel:    next.Item.TargetLevel.ToUint8(),
			Sequence:       next.Item.Sequence,
			EstimatedWeeks: next.Item.EstimatedWeeks,
		}
	}
	return res
}

func newAnalysisSummary(a career.Analysis) *AnalysisSummary {
	return &AnalysisSummary{
		ID:              a.ID,
		Rid:             a.Rid,
		RoleTitle:       a.RoleTitle,
		MatchPercentage: a.MatchPercentage,
		Readiness:       string(a.Readiness),
		EstimatedWeeks:  a.EstimatedWeeks,
		Ctime:           a.Ctime.Format(time.DateTime),
	}
}

func newRecommendation(rec career.Recommendation) Recommendation {
	return Recommendation{
		Rid:             rec.Role.ID,
		Title:           rec.Role.Title,
		Category:        string(rec.Role.Category),
		Score:           rec.Score,
		MatchPercentage: rec.MatchPercentage,
		Reasons:         rec.Reasons,
	}
}

func newCollectedJob(j job.Job) CollectedJob {
	res := CollectedJob{
		ID:        j.ID,
		Title:     j.Title,
		Company:   j.Company,
		Location:  j.Location,
		Remote:    j.Remote,
		Category:  j.Category,
		SalaryMin: j.SalaryMin,
		SalaryMax: j.SalaryMax,
		Level:     j.Level.String(),
		Status:    j.Status.ToUint8(),
	}
	if !j.PostedAt.IsZero() {
		res.PostedAt = j.PostedAt.Format(time.DateTime)
	}
	return res
}
