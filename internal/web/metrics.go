package web

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	imageUploads = promauto.NewCounter(prometheus.CounterOpts{
		Name: "homedoc_image_uploads_total",
		Help: "Number of image blobs uploaded.",
	})
	surveyCommits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "homedoc_survey_commits_total",
		Help: "Number of survey commit attempts by outcome.",
	}, []string{"outcome"})
	cornerAppends = promauto.NewCounter(prometheus.CounterOpts{
		Name: "homedoc_corner_appends_total",
		Help: "Number of tenant corner captures appended.",
	})
)
