package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/skillbridge/internal/interactive"
	"github.com/ecodeclub/skillbridge/internal/job"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// CollectedJobs 收藏夹里的岗位，收藏记录在互动模块里只有 id，
// 这里拿岗位详情补全
func (h *Handler) CollectedJobs(ctx *ginx.Context, req CollectedJobsReq, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	if req.Limit <= 0 {
		req.Limit = defaultLimit
	}
	if req.Limit > maxLimit {
		req.Limit = maxLimit
	}
	reqCtx := ctx.Request.Context()
	ids, err := h.intrSvc.CollectionIds(reqCtx, uid, interactive.BizJob, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	if len(ids) == 0 {
		return ginx.Result{
			Data: CollectedJobList{},
		}, nil
	}
	jobs, err := h.jobSvc.GetByIDs(reqCtx, ids)
	if err != nil {
		return systemErrorResult, err
	}
	jm := slice.ToMap(jobs, func(element job.Job) int64 {
		return element.ID
	})
	// 按收藏顺序返回，已经下架删除的岗位直接跳过
	res := make([]CollectedJob, 0, len(ids))
	for _, id := range ids {
		j, ok := jm[id]
		if !ok {
			continue
		}
		res = append(res, newCollectedJob(j))
	}
	return ginx.Result{
		Data: CollectedJobList{Jobs: res},
	}, nil
}
