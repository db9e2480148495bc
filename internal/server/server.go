package server

// Server groups the HTTP handlers of the local dashboard API.
type Server struct {
	DashboardServer
}

func NewServer(
	dashboardServer DashboardServer,
) Server {
	return Server{
		DashboardServer: dashboardServer,
	}
}
