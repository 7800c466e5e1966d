package domain

import "time"

type Skill struct {
	ID         int64
	Name       string
	Category   string
	Difficulty uint8
	Desc       string
	Popularity int
	Ctime      time.Time
	Utime      time.Time
}

type Role struct {
	ID       int64
	Title    string
	Overview string
	Category string
	// 单位是分
	SalaryMin   int64
	SalaryMax   int64
	DemandScore int
	Growth      float64
	Status      uint8
	Ctime       time.Time
	Utime       time.Time
}

type Job struct {
	ID        int64
	Title     string
	Company   string
	Location  string
	Remote    bool
	Category  string
	Rid       int64
	SalaryMin int64
	SalaryMax int64
	Level     string
	Status    uint8
	Source    string
	URL       string
	Summary   string
	PostedAt  time.Time
	ExpiresAt time.Time
	Ctime     time.Time
	Utime     time.Time
}

type SearchResult struct {
	Skills []Skill
	Roles  []Role
	Jobs   []Job
}

func (s *SearchResult) SetSkills(skills []Skill) {
	s.Skills = skills
}

func (s *SearchResult) SetRoles(roles []Role) {
	s.Roles = roles
}

func (s *SearchResult) SetJobs(jobs []Job) {
	s.Jobs = jobs
}
