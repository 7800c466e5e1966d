package web

import "github.com/ecodeclub/skillbridge/internal/user/internal/domain"

type Profile struct {
	Id              int64    `json:"id"`
	SN              string   `json:"sn"`
	Nickname        string   `json:"nickname"`
	Avatar          string   `json:"avatar"`
	Bio             string   `json:"bio"`
	CurrentTitle    string   `json:"currentTitle"`
	ExperienceYears uint8    `json:"experienceYears"`
	Interests       []string `json:"interests"`
	TargetRid       int64    `json:"targetRid"`
	TargetRole      string   `json:"targetRole"`
}

func newProfile(u domain.User) Profile {
	return Profile{
		Id:              u.Id,
		SN:              u.SN,
		Nickname:        u.Nickname,
		Avatar:          u.Avatar,
		Bio:             u.Bio,
		CurrentTitle:    u.CurrentTitle,
		ExperienceYears: u.ExperienceYears,
		Interests:       u.Interests,
		TargetRid:       u.TargetRid,
		TargetRole:      u.TargetRole,
	}
}

type EditReq struct {
	Avatar          string `json:"avatar"`
	Nickname        string `json:"nickname"`
	Bio             string `json:"bio"`
	CurrentTitle    string `json:"currentTitle"`
	ExperienceYears uint8  `json:"experienceYears"`
}

type InterestsReq struct {
	Interests []string `json:"interests"`
}
