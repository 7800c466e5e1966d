// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"time"

	"github.com/ecodeclub/skillbridge/internal/search/internal/domain"
)

type SearchReq struct {
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
	Expr   string `json:"expr"`
}

type Skill struct {
	Id         int64  `json:"id,omitempty"`
	Name       string `json:"name,omitempty"`
	Category   string `json:"category,omitempty"`
	Difficulty uint8  `json:"difficulty,omitempty"`
	Desc       string `json:"desc,omitempty"`
	Popularity int    `json:"popularity,omitempty"`
	Utime      string `json:"utime,omitempty"`
}

type Role struct {
	Id          int64   `json:"id,omitempty"`
	Title       string  `json:"title,omitempty"`
	Overview    string  `json:"overview,omitempty"`
	Category    string  `json:"category,omitempty"`
	SalaryMin   int64   `json:"salaryMin,omitempty"`
	SalaryMax   int64   `json:"salaryMax,omitempty"`
	DemandScore int     `json:"demandScore,omitempty"`
	Growth      float64 `json:"growth,omitempty"`
	Utime       string  `json:"utime,omitempty"`
}

type Job struct {
	Id        int64  `json:"id,omitempty"`
	Title     string `json:"title,omitempty"`
	Company   string `json:"company,omitempty"`
	Location  string `json:"location,omitempty"`
	Remote    bool   `json:"remote,omitempty"`
	Category  string `json:"category,omitempty"`
	Rid       int64  `json:"rid,omitempty"`
	SalaryMin int64  `json:"salaryMin,omitempty"`
	SalaryMax int64  `json:"salaryMax,omitempty"`
	Level     string `json:"level,omitempty"`
	Source    string `json:"source,omitempty"`
	URL       string `json:"url,omitempty"`
	Summary   string `json:"summary,omitempty"`
	PostedAt  string `json:"postedAt,omitempty"`
	ExpiresAt string `json:"expiresAt,omitempty"`
	Utime     string `json:"utime,omitempty"`
}

type SearchResult struct {
	Skills []Skill `json:"skills,omitempty"`
	Roles  []Role  `json:"roles,omitempty"`
	Jobs   []Job   `json:"jobs,omitempty"`
}

func NewSearchResult(res *domain.SearchResult) SearchResult {
	var newResult SearchResult
	for _, skill := range res.Skills {
		newResult.Skills = append(newResult.Skills, Skill{
			Id:         skill.ID,
			Name:       skill.Name,
			Category:   skill.Category,
			Difficulty: skill.Difficulty,
			Desc:       skill.Desc,
			Popularity: skill.Popularity,
			Utime:      skill.Utime.Format(time.DateTime),
		})
	}
	for _, role := range res.Roles {
		newResult.Roles = append(newResult.Roles, Role{
			Id:          role.ID,
			Title:       role.Title,
			Overview:    role.Overview,
			Category:    role.Category,
			SalaryMin:   role.SalaryMin,
			SalaryMax:   role.SalaryMax,
			DemandScore: role.DemandScore,
			Growth:      role.Growth,
			Utime:       role.Utime.Format(time.DateTime),
		})
	}
	for _, job := range res.Jobs {
		newJob := Job{
			Id:        job.ID,
			Title:     job.Title,
			Company:   job.Company,
			Location:  job.Location,
			Remote:    job.Remote,
			Category:  job.Category,
			Rid:       job.Rid,
			SalaryMin: job.SalaryMin,
			SalaryMax: job.SalaryMax,
			Level:     job.Level,
			Source:    job.Source,
			URL:       job.URL,
			Summary:   job.Summary,
			PostedAt:  job.PostedAt.Format(time.DateTime),
			Utime:     job.Utime.Format(time.DateTime),
		}
		if !job.ExpiresAt.IsZero() {
			newJob.ExpiresAt = job.ExpiresAt.Format(time.DateTime)
		}
		newResult.Jobs = append(newResult.Jobs, newJob)
	}
	return newResult
}
