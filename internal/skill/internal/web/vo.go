package web

import (
	"time"

	"github.com/ecodeclub/skillbridge/internal/skill/internal/domain"
)

type Page struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ListReq struct {
	Page
	// 可选筛选条件
	Category   string `json:"category,omitempty"`
	Difficulty uint8  `json:"difficulty,omitempty"`
}

type Sid struct {
	Sid int64 `json:"sid"`
}

type PopularReq struct {
	Limit int `json:"limit,omitempty"`
}

type SaveReq struct {
	Skill Skill `json:"skill"`
}

type SaveLevelReq struct {
	Level SkillLevel `json:"level"`
}

type AddUserSkillReq struct {
	Sid    int64 `json:"sid"`
	Slid   int64 `json:"slid"`
	Status uint8 `json:"status,omitempty"`
}

type RemoveUserSkillReq struct {
	Sid int64 `json:"sid"`
}

type Skill struct {
	ID         int64  `json:"id,omitempty"`
	Name       string `json:"name,omitempty"`
	Category   string `json:"category,omitempty"`
	Difficulty uint8  `json:"difficulty,omitempty"`
	Desc       string `json:"desc,omitempty"`
	Popularity int    `json:"popularity,omitempty"`
	Utime      string `json:"utime,omitempty"`
}

type SkillList struct {
	Total  int64   `json:"total,omitempty"`
	Skills []Skill `json:"skills,omitempty"`
}

type SkillLevel struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
	Rank uint8  `json:"rank,omitempty"`
	Desc string `json:"desc,omitempty"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type UserSkill struct {
	ID     int64      `json:"id,omitempty"`
	Skill  Skill      `json:"skill"`
	Level  SkillLevel `json:"level"`
	Status uint8      `json:"status,omitempty"`
	Utime  string     `json:"utime,omitempty"`
}

func (s Skill) toDomain() domain.Skill {
	return domain.Skill{
		ID:         s.ID,
		Name:       s.Name,
		Category:   domain.Category(s.Category),
		Difficulty: s.Difficulty,
		Desc:       s.Desc,
	}
}

func (s SkillLevel) toDomain() domain.SkillLevel {
	return domain.SkillLevel{
		ID:   s.ID,
		Name: s.Name,
		Rank: s.Rank,
		Desc: s.Desc,
	}
}

func newSkill(s domain.Skill) Skill {
	return Skill{
		ID:         s.ID,
		Name:       s.Name,
		Category:   s.Category.String(),
		Difficulty: s.Difficulty,
		Desc:       s.Desc,
		Popularity: s.Popularity,
		Utime:      s.Utime.Format(time.DateTime),
	}
}

func newSkillLevel(l domain.SkillLevel) SkillLevel {
	return SkillLevel{
		ID:   l.ID,
		Name: l.Name,
		Rank: l.Rank,
		Desc: l.Desc,
	}
}

func newUserSkill(us domain.UserSkill) UserSkill {
	return UserSkill{
		ID:     us.ID,
		Skill:  newSkill(us.Skill),
		Level:  newSkillLevel(us.Level),
		Status: us.Status.ToUint8(),
		Utime:  us.Utime.Format(time.DateTime),
	}
}
