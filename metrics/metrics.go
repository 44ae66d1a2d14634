// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics 执行器调用统计
package metrics

import (
	"fmt"
	"time"

	arcadelog "github.com/33cn/arcade/common/log"
	"github.com/33cn/arcade/types"
	go_metrics "github.com/rcrowley/go-metrics"
)

var log = arcadelog.New("module", "metrics")

// logger 适配 go-metrics 的 Printf 接口
type logger struct{}

func (logger) Printf(format string, v ...interface{}) {
	log.Info(fmt.Sprintf(format, v...))
}

//StartMetrics 根据配置周期性输出统计到日志
func StartMetrics(cfg *types.Metrics) {
	if cfg == nil || !cfg.EnableMetrics {
		log.Info("Metrics data is not enabled to emit")
		return
	}
	go go_metrics.Log(go_metrics.DefaultRegistry, time.Duration(cfg.Duration)*time.Second, logger{})
}

func name(execer, op, suffix string) string {
	return "arcade." + execer + "." + op + "." + suffix
}

//MarkCall 记录一次调用的结果以及耗时
func MarkCall(execer, op string, begin time.Time, err error) {
	go_metrics.GetOrRegisterTimer(name(execer, op, "time"), nil).UpdateSince(begin)
	if err != nil {
		go_metrics.GetOrRegisterCounter(name(execer, op, "err"), nil).Inc(1)
		return
	}
	go_metrics.GetOrRegisterCounter(name(execer, op, "ok"), nil).Inc(1)
}

//Count 当前计数
func Count(execer, op string, ok bool) int64 {
	suffix := "err"
	if ok {
		suffix = "ok"
	}
	return go_metrics.GetOrRegisterCounter(name(execer, op, suffix), nil).Count()
}
