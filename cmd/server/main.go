package main

import (
	"log"

	httpadapter "lifeos/internal/adapter/http"
	metricsinmem "lifeos/internal/adapter/metrics/inmemory"
	filerepo "lifeos/internal/adapter/repo/file"
	gormrepo "lifeos/internal/adapter/repo/gorm"
	"lifeos/internal/app/action"
	"lifeos/internal/app/advance"
	"lifeos/internal/app/history"
	"lifeos/internal/app/notes"
	"lifeos/internal/app/ports"
	"lifeos/internal/app/sim"
	"lifeos/internal/app/status"
	"lifeos/internal/config"

	"github.com/cloudwego/hertz/pkg/app/server"
)

func main() {
	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	profiles, txManager := mustBuildRepo(cfg)
	kpiRecorder := metricsinmem.NewRecorder()

	h := httpadapter.Handler{
		ActionUC:  action.UseCase{Tx: txManager, Profiles: profiles, Metrics: kpiRecorder},
		AdvanceUC: advance.UseCase{Tx: txManager, Profiles: profiles, Metrics: kpiRecorder},
		StatusUC:  status.UseCase{Profiles: profiles},
		HistoryUC: history.UseCase{Profiles: profiles},
		NotesUC:   notes.UseCase{Tx: txManager, Profiles: profiles},
		SimUC:     sim.UseCase{Tx: txManager, Profiles: profiles},
		KPI:       kpiRecorder,
	}

	s := server.Default(server.WithHostPorts(cfg.Addr))
	h.RegisterRoutes(s)

	log.Printf("lifeos server listening on %s", cfg.Addr)
	s.Spin()
}

func mustBuildRepo(cfg config.Server) (ports.ProfileRepository, ports.TxManager) {
	if cfg.DBDSN != "" {
		db, err := gormrepo.OpenPostgres(cfg.DBDSN)
		if err != nil {
			log.Fatalf("open postgres: %v", err)
		}
		if err := gormrepo.Migrate(db); err != nil {
			log.Fatalf("migrate: %v", err)
		}
		log.Println("profile persistence: postgres")
		return gormrepo.NewProfileRepo(db), gormrepo.NewTxManager(db)
	}

	log.Printf("profile persistence: %s", cfg.DataFile)
	return filerepo.NewProfileStore(cfg.DataFile), filerepo.TxManager{}
}
