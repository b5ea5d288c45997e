package main

import (
	"fmt"
	"net/http"
	_ "net/http/pprof"

	"github.com/gin-gonic/gin"

	"wdbc-analysis/share/config"
	"wdbc-analysis/share/logger"
	"wdbc-analysis/wdbc_config"
)

func main() {
	// 一些初始化配置
	config.InitConfig()
	all := config.All
	l := all.Logger
	ss := all.Server
	logger.InitLogger(l.Level, "wdbc", l.Path, l.MaxAge, l.RotationTime, l.RotationSize, ss.SentryDsn)

	go func() {
		err := http.ListenAndServe(":"+ss.PprofPort, nil)
		if err != nil {
			fmt.Printf("http.ListenAndServe failed, err:%s", err)
		}
	}()

	r := gin.Default()

	r.POST("/analysis", analyze)

	port := ss.HttpPort
	if len(port) == 0 {
		port = wdbc_config.GinPort
	}
	r.Run(":" + port)
}

func analyze(c *gin.Context) {
	var requestJson AnalysisRequest
	if err := c.ShouldBindJSON(&requestJson); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		logger.Warnf("bad analysis request: %v", err)
		return
	}
	resp, t, err := RunAnalysis(&requestJson)
	if err != nil {
		logger.Errorf("analysis failed: %v", err)
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"error":   err.Error(),
		})
	} else {
		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"result":     resp,
			"spent_time": t,
		})
	}
}
