package event

import (
	"encoding/json"

	"github.com/ecodeclub/skillbridge/internal/career/internal/domain"
)

type RoleEvent struct {
	Biz   string `json:"biz"`
	BizID int64  `json:"bizID"`
	Data  string `json:"data"`
}

type Role struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	Category    string  `json:"category"`
	SalaryMin   int64   `json:"salaryMin"`
	SalaryMax   int64   `json:"salaryMax"`
	DemandScore int     `json:"demandScore"`
	Growth      float64 `json:"growth"`
	Status      uint8   `json:"status"`
	Ctime       int64   `json:"ctime"`
	Utime       int64   `json:"utime"`
}

func newRole(r domain.Role) Role {
	return Role{
		ID:          r.ID,
		Title:       r.Title,
		Overview:    r.Overview,
		Category:    r.Category.String(),
		SalaryMin:   r.SalaryMin,
		SalaryMax:   r.SalaryMax,
		DemandScore: r.DemandScore,
		Growth:      r.Growth,
		Status:      r.Status.ToUint8(),
		Ctime:       r.Ctime.UnixMilli(),
		Utime:       r.Utime.UnixMilli(),
	}
}

func NewRoleEvent(r domain.Role) RoleEvent {
	data, _ := json.Marshal(newRole(r))
	return RoleEvent{
		Biz:   "role",
		BizID: r.ID,
		Data:  string(data),
	}
}
