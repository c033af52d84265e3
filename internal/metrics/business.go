package metrics

// IncrementThreadCreated increments the thread creation counter
func (m *Metrics) IncrementThreadCreated() {
	m.safeExecute("IncrementThreadCreated", func() {
		m.ThreadCreatedTotal.Inc()
	})
}

// IncrementCommentCreated increments the comment creation counter
func (m *Metrics) IncrementCommentCreated() {
	m.safeExecute("IncrementCommentCreated", func() {
		m.CommentCreatedTotal.Inc()
	})
}

// IncrementReportCreated increments the report creation counter
func (m *Metrics) IncrementReportCreated() {
	m.safeExecute("IncrementReportCreated", func() {
		m.ReportCreatedTotal.Inc()
	})
}

// IncrementLikeToggled increments the like toggle counter
func (m *Metrics) IncrementLikeToggled() {
	m.safeExecute("IncrementLikeToggled", func() {
		m.LikeToggledTotal.Inc()
	})
}

// SetThreadsTotal sets the total threads gauge
func (m *Metrics) SetThreadsTotal(count int64) {
	m.safeExecute("SetThreadsTotal", func() {
		m.ThreadsTotal.Set(float64(count))
	})
}

// SetCommentsTotal sets the total comments gauge
func (m *Metrics) SetCommentsTotal(count int64) {
	m.safeExecute("SetCommentsTotal", func() {
		m.CommentsTotal.Set(float64(count))
	})
}

// SetUsersTotal sets the total users gauge
func (m *Metrics) SetUsersTotal(count int64) {
	m.safeExecute("SetUsersTotal", func() {
		m.UsersTotal.Set(float64(count))
	})
}

// SetReportsUnhandled sets the unhandled reports gauge
func (m *Metrics) SetReportsUnhandled(count int64) {
	m.safeExecute("SetReportsUnhandled", func() {
		m.ReportsUnhandled.Set(float64(count))
	})
}
