package web

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/KNICEX/analyst-agent/internal/service/analyst"
	"github.com/KNICEX/analyst-agent/internal/service/chart"
)

// writeArtifact 图表返回 {"answer": base64}, 文本返回单元素数组 ["text"]
func writeArtifact(w http.ResponseWriter, artifact analyst.Artifact) {
	if artifact.Kind == chart.KindChart {
		writeJSON(w, http.StatusOK, map[string]string{"answer": artifact.Image})
		return
	}
	writeJSON(w, http.StatusOK, []string{artifact.Text})
}

// writeError 所有失败都按 400 返回, 不区分客户端/服务端原因
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}
