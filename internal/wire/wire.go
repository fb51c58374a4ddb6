// Package wire provides dependency injection for the FlowPay
// application. It creates singleton services with lazy initialization.
package wire

import (
	"log"
	"sync"

	"github.com/AlvaroPrates/flowpay/internal/adapters/memory"
	"github.com/AlvaroPrates/flowpay/internal/adapters/sqlite"
	"github.com/AlvaroPrates/flowpay/internal/app"
	"github.com/AlvaroPrates/flowpay/internal/config"
	"github.com/AlvaroPrates/flowpay/internal/db"
	"github.com/AlvaroPrates/flowpay/internal/notify"
	"github.com/AlvaroPrates/flowpay/internal/ports/primary"
	"github.com/AlvaroPrates/flowpay/internal/ports/secondary"
)

var (
	cfg                *config.Config
	hub                *notify.Hub
	distributorService primary.DistributorService
	agentService       primary.AgentService
	attendanceService  primary.AttendanceService
	queueService       primary.QueueService
	dashboardService   primary.DashboardService
	once               sync.Once
)

// Cfg returns the loaded configuration.
func Cfg() *config.Config {
	once.Do(initServices)
	return cfg
}

// Hub returns the singleton change-notification hub.
func Hub() *notify.Hub {
	once.Do(initServices)
	return hub
}

// DistributorService returns the singleton DistributorService instance.
func DistributorService() primary.DistributorService {
	once.Do(initServices)
	return distributorService
}

// AgentService returns the singleton AgentService instance.
func AgentService() primary.AgentService {
	once.Do(initServices)
	return agentService
}

// AttendanceService returns the singleton AttendanceService instance.
func AttendanceService() primary.AttendanceService {
	once.Do(initServices)
	return attendanceService
}

// QueueService returns the singleton QueueService instance.
func QueueService() primary.QueueService {
	once.Do(initServices)
	return queueService
}

// DashboardService returns the singleton DashboardService instance.
func DashboardService() primary.DashboardService {
	once.Do(initServices)
	return dashboardService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	loaded, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	cfg = loaded

	var (
		agentRepo      secondary.AgentRepository
		attendanceRepo secondary.AttendanceRepository
		queueRepo      secondary.QueueRepository
	)

	switch cfg.Backend {
	case config.BackendSQLite:
		path := cfg.SQLite.Path
		if path == "" {
			path, err = db.DefaultPath()
			if err != nil {
				log.Fatalf("failed to resolve database path: %v", err)
			}
		}
		database, err := db.Open(path)
		if err != nil {
			log.Fatalf("failed to open database: %v", err)
		}
		agentRepo = sqlite.NewAgentRepository(database)
		attendanceRepo = sqlite.NewAttendanceRepository(database)
		queueRepo = sqlite.NewQueueRepository(database)
	default:
		agentRepo = memory.NewAgentRepository()
		attendanceRepo = memory.NewAttendanceRepository()
		queueRepo = memory.NewQueueRepository()
	}

	hub = notify.NewHub()

	distributorService = app.NewDistributorService(attendanceRepo, agentRepo, queueRepo, hub)
	agentService = app.NewAgentService(agentRepo)
	attendanceService = app.NewAttendanceService(attendanceRepo)
	queueService = app.NewQueueService(queueRepo, attendanceRepo)
	dashboardService = app.NewDashboardService(attendanceRepo, agentRepo, queueRepo, queueService)
}
