package main

import (
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/creditdesk/bureau-data-service/internal/database"
	"github.com/creditdesk/bureau-data-service/internal/report/store"
	"github.com/creditdesk/bureau-data-service/internal/system/config"
	"github.com/creditdesk/bureau-data-service/internal/system/constants"
	syslog "github.com/creditdesk/bureau-data-service/internal/system/log"
	"github.com/creditdesk/bureau-data-service/internal/system/managers"
)

const configFile = "config/deployment.yaml"

func main() {
	bdsHome := getBDSHome()

	envFiles, _ := filepath.Glob(filepath.Join(bdsHome, "config", "*.env"))
	_ = godotenv.Load(envFiles...)

	// Load the configuration file
	bdsConfig, err := config.LoadConfig(bdsHome, configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	config.InitializeRuntime(bdsConfig)

	// Initialize logger
	if err := syslog.Init(bdsConfig.Log.LogLevel); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	logger := syslog.GetLogger()

	initDatabasesFromConfig(bdsConfig)

	serverAddr := fmt.Sprintf("%s:%d", bdsConfig.Addr.Host, bdsConfig.Addr.Port)
	mux := enableCORS(initMultiplexer())

	ln, err := net.Listen("tcp", serverAddr)
	if err != nil {
		logger.Fatal("Failed to start listener", syslog.String("addr", serverAddr), syslog.Error(err))
	}
	logger.Info("Bureau data service started", syslog.String("addr", serverAddr))

	server := &http.Server{Handler: mux}
	if err := server.Serve(ln); err != nil {
		logger.Fatal("Failed to serve requests", syslog.Error(err))
	}
}

// initDatabasesFromConfig connects the report store and, when enabled, the
// raw payload archive. The service runs without either for stateless
// parse/merge/risk calls, so missing database config only logs a warning.
func initDatabasesFromConfig(cfg *config.Config) {
	logger := syslog.GetLogger()

	db := cfg.DatabaseConfig
	if db.Host == "" || db.Port == "" || db.User == "" || db.DbName == "" {
		logger.Warn("PostgreSQL configuration incomplete, running without report persistence")
	} else {
		pg := database.ConnectPostgres(db.Host, db.Port, db.User, db.Password, db.DbName)
		if err := store.NewReportRepository(pg.DB).EnsureSchema(); err != nil {
			logger.Fatal("Failed to prepare report schema", syslog.Error(err))
		}
	}

	if cfg.Archive.Enabled {
		if cfg.Archive.URI == "" || cfg.Archive.DbName == "" {
			logger.Warn("Archive enabled but MongoDB configuration incomplete, skipping payload archive")
		} else {
			database.ConnectMongoDB(cfg.Archive.URI, cfg.Archive.DbName)
		}
	}
}

// initMultiplexer initializes the HTTP multiplexer and registers the services.
func initMultiplexer() *http.ServeMux {

	mux := http.NewServeMux()
	serviceManager := managers.NewServiceManager(mux)

	// Register the services.
	if err := serviceManager.RegisterServices(constants.ApiBasePath); err != nil {
		syslog.GetLogger().Fatal("Failed to register the services", syslog.Error(err))
	}

	return mux
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func getBDSHome() string {

	// Parse project directory from command line arguments.
	projectHomeFlag := flag.String("bdsHome", "", "Path to the bureau data service home directory")
	flag.Parse()

	if *projectHomeFlag != "" {
		return *projectHomeFlag
	}
	if fromEnv := os.Getenv("BDS_HOME"); fromEnv != "" {
		return fromEnv
	}
	wd, err := os.Getwd()
	if err != nil {
		log.Fatalf("Failed to resolve working directory: %v", err)
	}
	return wd
}
