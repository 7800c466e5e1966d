package web

import (
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/skillbridge/internal/career"
	"github.com/ecodeclub/skillbridge/internal/roadmap/internal/domain"
)

type Page struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type Rid struct {
	Rid int64 `json:"rid"`
}

type IDReq struct {
	Id int64 `json:"id"`
}

type CompleteItemReq struct {
	Id int64 `json:"id"`
	// ActualWeeks 实际用了几周，必填且为正
	ActualWeeks int `json:"actualWeeks"`
}

type Roadmap struct {
	ID        int64  `json:"id"`
	SN        string `json:"sn,omitempty"`
	Rid       int64  `json:"rid"`
	RoleTitle string `json:"roleTitle,omitempty"`
	Status    uint8  `json:"status,omitempty"`
	Active    bool   `json:"active"`
	// TotalWeeks 含同类折扣的总周数估算
	TotalWeeks int `json:"totalWeeks,omitempty"`
	// Progress 已完成学习项的占比，0-100
	Progress      float64 `json:"progress"`
	EstimatedDone string  `json:"estimatedDone,omitempty"`
	Items         []Item  `json:"items,omitempty"`
	Utime         string  `json:"utime,omitempty"`
}

type RoadmapList struct {
	Total    int64     `json:"total,omitempty"`
	Roadmaps []Roadmap `json:"roadmaps,omitempty"`
}

type Item struct {
	ID          int64  `json:"id"`
	Sid         int64  `json:"sid"`
	Name        string `json:"name,omitempty"`
	Category    string `json:"category,omitempty"`
	TargetLevel uint8  `json:"targetLevel"`
	Sequence    int    `json:"sequence"`
	// Status 取 pending in_progress completed
	Status         string `json:"status"`
	Priority       string `json:"priority"`
	EstimatedWeeks int    `json:"estimatedWeeks"`
	ActualWeeks    int    `json:"actualWeeks,omitempty"`
	StartTime      string `json:"startTime,omitempty"`
	EndTime        string `json:"endTime,omitempty"`
}

type NextResp struct {
	// Done 为 true 表示路线上已经没有待学的项
	Done bool  `json:"done"`
	Item *Item `json:"item,omitempty"`
}

// Analysis 选定目标时一并返回的分析摘要
type Analysis struct {
	ID                int64   `json:"id"`
	MatchPercentage   float64 `json:"matchPercentage"`
	TotalRequired     int     `json:"totalRequired"`
	MatchedCount      int     `json:"matchedCount"`
	MissingCount      int     `json:"missingCount"`
	InsufficientCount int     `json:"insufficientCount"`
	Readiness         string  `json:"readiness"`
	EstimatedWeeks    int     `json:"estimatedWeeks"`
}

type SelectTargetResp struct {
	Analysis Analysis `json:"analysis"`
	Roadmap  Roadmap  `json:"roadmap"`
}

func newRoadmap(rm domain.Roadmap) Roadmap {
	res := Roadmap{
		ID:         rm.ID,
		SN:         rm.SN,
		Rid:        rm.Rid,
		RoleTitle:  rm.RoleTitle,
		Status:     rm.Status.ToUint8(),
		Active:     rm.Active,
		TotalWeeks: rm.TotalWeeks,
		Progress:   rm.Progress,
		Utime:      rm.Utime.Format(time.DateTime),
		Items: slice.Map(rm.Items, func(idx int, src domain.Item) Item {
			return newItem(src)
		}),
	}
	if !rm.EstimatedDone.IsZero() {
		res.EstimatedDone = rm.EstimatedDone.Format(time.DateOnly)
	}
	return res
}

func newItem(item domain.Item) Item {
	res := Item{
		ID:             item.ID,
		Sid:            item.Sid,
		Name:           item.Name,
		Category:       item.Category,
		TargetLevel:    item.TargetLevel.ToUint8(),
		Sequence:       item.Sequence,
		Status:         item.Status.String(),
		Priority:       item.Priority.String(),
		EstimatedWeeks: item.EstimatedWeeks,
		ActualWeeks:    item.ActualWeeks,
	}
	if !item.StartTime.IsZero() {
		res.StartTime = item.StartTime.Format(time.DateTime)
	}
	if !item.EndTime.IsZero() {
		res.EndTime = item.EndTime.Format(time.DateTime)
	}
	return res
}

func newAnalysis(a career.Analysis) Analysis {
	return Analysis{
		ID:                a.ID,
		MatchPercentage:   a.MatchPercentage,
		TotalRequired:     a.TotalRequired,
		MatchedCount:      a.MatchedCount,
		MissingCount:      a.MissingCount,
		InsufficientCount: a.InsufficientCount,
		Readiness:         string(a.Readiness),
		EstimatedWeeks:    a.EstimatedWeeks,
	}
}
