package web

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ecodeclub/ginx"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

const (
	statisticsKey        = "statistics"
	statisticsExpiration = 10 * time.Minute
)

// Statistics 平台规模统计，落地页用，缓存兜底
func (h *Handler) Statistics(ctx *ginx.Context) (ginx.Result, error) {
	reqCtx := ctx.Request.Context()
	if cached, ok := h.cachedStatistics(reqCtx); ok {
		return ginx.Result{
			Data: cached,
		}, nil
	}
	var (
		eg  errgroup.Group
		res Statistics
	)
	eg.Go(func() error {
		ccs, err := h.skillSvc.Categories(reqCtx)
		if err != nil {
			return err
		}
		res.SkillCategories = make(map[string]int64, len(ccs))
		for _, cc := range ccs {
			res.SkillCategories[string(cc.Category)] = cc.Count
		}
		return nil
	})
	eg.Go(func() error {
		_, total, err := h.roleSvc.List(reqCtx, 0, 1, "")
		res.ActiveRoles = total
		return err
	})
	eg.Go(func() error {
		_, total, err := h.jobSvc.PubList(reqCtx, 0, 1, "", false)
		res.ActiveJobs = total
		return err
	})
	eg.Go(func() error {
		stats, err := h.roadmapSvc.Stats(reqCtx)
		if err != nil {
			return err
		}
		res.Roadmaps = stats.Roadmaps
		if stats.ItemsTotal > 0 {
			res.CompletionRate = float64(stats.ItemsCompleted) / float64(stats.ItemsTotal) * 100
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return systemErrorResult, err
	}
	h.setStatistics(reqCtx, res)
	return ginx.Result{
		Data: res,
	}, nil
}

func (h *Handler) cachedStatistics(ctx context.Context) (Statistics, bool) {
	var res Statistics
	val := h.cache.Get(ctx, statisticsKey)
	if val.KeyNotFound() {
		return res, false
	}
	if val.Err != nil {
		h.logger.Error("读取统计缓存失败", elog.FieldErr(val.Err))
		return res, false
	}
	str, err := val.String()
	if err != nil {
		return res, false
	}
	if err = json.Unmarshal([]byte(str), &res); err != nil {
		h.logger.Error("解析统计缓存失败", elog.FieldErr(err))
		return res, false
	}
	return res, true
}

func (h *Handler) setStatistics(ctx context.Context, res Statistics) {
	data, err := json.Marshal(res)
	if err != nil {
		h.logger.Error("序列化统计数据失败", elog.FieldErr(err))
		return
	}
	// 缓存写失败不影响响应
	if err = h.cache.Set(ctx, statisticsKey, string(data), statisticsExpiration); err != nil {
		h.logger.Error("写入统计缓存失败", elog.FieldErr(err))
	}
}
