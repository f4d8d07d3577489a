package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	Registrations = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "cyberhub_registrations_total", Help: "Total successful registrations"},
	)
	Logins = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "cyberhub_logins_total", Help: "Total successful logins"},
	)
	QuestionsPosted = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "cyberhub_questions_total", Help: "Total forum questions posted"},
	)
	AnswersPosted = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "cyberhub_answers_total", Help: "Total forum answers posted"},
	)
	ResourceReviews = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "cyberhub_resource_reviews_total", Help: "Total resource review decisions"},
	)
	ProjectToggles = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "cyberhub_project_toggles_total", Help: "Total project join/leave toggles"},
	)
	AssistantCalls = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "cyberhub_assistant_calls_total", Help: "Total assistant chat calls"},
	)
	ReportsFiled = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "cyberhub_reports_total", Help: "Total moderation reports filed"},
	)
)

func Register() {
	prometheus.MustRegister(
		Registrations, Logins,
		QuestionsPosted, AnswersPosted,
		ResourceReviews, ProjectToggles,
		AssistantCalls, ReportsFiled,
	)
}
