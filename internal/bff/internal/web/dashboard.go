package web

import (
	"context"
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/skillbridge/internal/career"
	"github.com/ecodeclub/skillbridge/internal/roadmap"
	"github.com/ecodeclub/skillbridge/internal/skill"
	"golang.org/x/sync/errgroup"
)

const recommendationLimit = 3

// Dashboard 工作台聚合接口，把首页要展示的东西一把拉回来
func (h *Handler) Dashboard(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	reqCtx := ctx.Request.Context()
	var (
		eg   errgroup.Group
		res  Dashboard
		rm   roadmap.Roadmap
		next roadmap.NextItem
		// hasRoadmap 还没选定目标方向的用户没有激活的路线
		hasRoadmap bool
	)
	eg.Go(func() error {
		u, err := h.userSvc.Profile(reqCtx, uid)
		if err != nil {
			return err
		}
		res.Profile = Profile{
			Nickname:        u.Nickname,
			Avatar:          u.Avatar,
			CurrentTitle:    u.CurrentTitle,
			ExperienceYears: u.ExperienceYears,
			TargetRid:       u.TargetRid,
			TargetRole:      u.TargetRole,
		}
		return nil
	})
	eg.Go(func() error {
		uss, err := h.skillSvc.UserSkills(reqCtx, uid)
		if err != nil {
			return err
		}
		for _, us := range uss {
			switch us.Status {
			case skill.UserSkillStatusLearning:
				res.Skills.Learning++
			case skill.UserSkillStatusAcquired:
				res.Skills.Acquired++
			}
		}
		return nil
	})
	eg.Go(func() error {
		var err error
		rm, err = h.roadmapSvc.Active(reqCtx, uid)
		if errors.Is(err, roadmap.ErrRoadmapNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		hasRoadmap = true
		next, err = h.roadmapSvc.Next(reqCtx, uid)
		return err
	})
	eg.Go(func() error {
		a, err := h.analysisSvc.Latest(reqCtx, uid)
		if errors.Is(err, career.ErrAnalysisNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		res.Analysis = newAnalysisSummary(a)
		return nil
	})
	eg.Go(func() error {
		recs, err := h.analysisSvc.Recommend(reqCtx, uid, recommendationLimit)
		if err != nil {
			return err
		}
		for _, rec := range recs {
			res.Recommendations = append(res.Recommendations, newRecommendation(rec))
		}
		return nil
	})
	eg.Go(func() error {
		var err error
		res.UnreadCnt, err = h.unreadCnt(reqCtx, uid)
		return err
	})
	if err := eg.Wait(); err != nil {
		return systemErrorResult, err
	}
	if hasRoadmap {
		res.Roadmap = newActiveRoadmap(rm, next)
	}
	return ginx.Result{
		Data: res,
	}, nil
}

func (h *Handler) unreadCnt(ctx context.Context, uid int64) (int64, error) {
	// 只要未读数，不拉列表
	_, _, unread, err := h.notifySvc.List(ctx, uid, 0, 1)
	return unread, err
}
