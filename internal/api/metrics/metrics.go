// Package metrics defines all custom Prometheus metrics for the course
// platform API. It is the single source of truth for metric names, labels,
// and help strings. Registration happens at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "courseplatform"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// UsersRegisteredTotal counts new account registrations.
// Label:
//   - role: "aluno", "instrutor" or "admin"
var UsersRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of registered accounts, by role.",
	},
	[]string{"role"},
)

// CoursesCreatedTotal counts published courses.
var CoursesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "courses_created_total",
		Help:      "Total number of courses created.",
	},
)

// CoursesDeletedTotal counts deleted courses.
var CoursesDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "courses_deleted_total",
		Help:      "Total number of courses deleted.",
	},
)

// EnrollmentsTotal counts enrollment attempts.
// Label:
//   - result: "created" or "duplicate"
var EnrollmentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "enrollments_total",
		Help:      "Total number of enrollment attempts, by result.",
	},
	[]string{"result"},
)

// EnrollmentsCancelledTotal counts self-service enrollment cancellations.
var EnrollmentsCancelledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "enrollments_cancelled_total",
		Help:      "Total number of cancelled enrollments.",
	},
)

// LessonURLsIssuedTotal counts signed lesson download URLs handed out.
var LessonURLsIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lesson_urls_issued_total",
		Help:      "Total number of signed lesson download URLs issued.",
	},
)

// UploadURLsIssuedTotal counts signed upload URLs handed out.
var UploadURLsIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upload_urls_issued_total",
		Help:      "Total number of signed upload URLs issued.",
	},
)
