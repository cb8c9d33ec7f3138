package mlmodel

import (
	"context"
	"encoding/json"
	"os/exec"
	"time"

	"ai-health-be/internal/pkg/logger"
)

const defaultTimeout = 10 * time.Second

type predictionOutput struct {
	Prediction string `json:"prediction"`
}

// Runner invokes the locally trained disease classifier as a subprocess.
// The classifier is advisory only: any failure (missing script, timeout,
// malformed output) yields an empty label and the pipeline moves on.
type Runner struct {
	python  string
	script  string
	timeout time.Duration
	log     logger.ILogger
}

func NewRunner(python, script string, log logger.ILogger) *Runner {
	if python == "" {
		python = "python"
	}
	return &Runner{
		python:  python,
		script:  script,
		timeout: defaultTimeout,
		log:     log,
	}
}

// Predict returns the classifier's disease label for the given symptoms, or
// "" when the classifier is unavailable or returns nothing usable.
func (r *Runner) Predict(ctx context.Context, symptoms []string) string {
	if r.script == "" || len(symptoms) == 0 {
		return ""
	}

	arg, err := json.Marshal(symptoms)
	if err != nil {
		return ""
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, r.python, r.script, string(arg)).Output()
	if err != nil {
		r.log.Debug("mlmodel", "classifier unavailable", map[string]interface{}{"error": err.Error()})
		return ""
	}

	var parsed predictionOutput
	if err := json.Unmarshal(out, &parsed); err != nil {
		r.log.Debug("mlmodel", "classifier output not parseable", map[string]interface{}{"output": string(out)})
		return ""
	}

	return parsed.Prediction
}
