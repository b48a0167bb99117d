package main

import (
	"errors"
	"log"
	"net/http"
	"sync"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"inventoryplanner/collections"
	"inventoryplanner/config"
	"inventoryplanner/handlers"
	"inventoryplanner/store"
)

func main() {
	app := pocketbase.New()

	var configPath string
	app.RootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"planner settings file (defaults to ./"+config.DefaultFile+" when present)")

	loadConfig := sync.OnceValues(func() (*config.Config, error) {
		return config.Load(configPath)
	})

	app.RootCmd.AddCommand(newExportCommand(app, loadConfig))

	// Create the kv collection, open the planner state and seed demo data.
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		s, err := openStore(app, cfg)
		if err != nil {
			if errors.Is(err, store.ErrCorruptState) {
				log.Fatalf("planner state under %q is unreadable: %v", cfg.Store.Key, err)
			}
			return err
		}

		if cfg.Seed.Enabled {
			if err := collections.Seed(s); err != nil {
				log.Printf("Warning: seed data failed: %v", err)
			}
		}

		registerRoutes(se, s, cfg)

		app.Logger().Info("planner ready",
			"stateKey", cfg.Store.Key,
			"products", len(s.ListProducts()),
			"clients", len(s.ListClients()),
			"projects", len(s.ListProjects()),
		)
		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}

// openStore makes sure the kv collection exists and loads the planner state
// from it.
func openStore(app *pocketbase.PocketBase, cfg *config.Config) (*store.Store, error) {
	collections.Setup(app)
	return store.Open(collections.NewKVStore(app), cfg.Store.Key)
}

func registerRoutes(se *core.ServeEvent, s *store.Store, cfg *config.Config) {
	// ── Products ─────────────────────────────────────────────
	se.Router.GET("/products", handlers.HandleProductList(s))
	se.Router.POST("/products", handlers.HandleProductCreate(s))
	// Import routes must be before {id} to avoid matching "import" as an ID
	se.Router.POST("/products/import", handlers.HandleProductImport(s))
	se.Router.GET("/products/import/template", handlers.HandleProductTemplate())
	se.Router.POST("/products/import/errors", handlers.HandleProductErrorReport())
	se.Router.GET("/products/{id}", handlers.HandleProductGet(s))
	se.Router.PATCH("/products/{id}", handlers.HandleProductUpdate(s))
	se.Router.DELETE("/products/{id}", handlers.HandleProductDelete(s))

	// ── Clients ──────────────────────────────────────────────
	se.Router.GET("/clients", handlers.HandleClientList(s))
	se.Router.POST("/clients", handlers.HandleClientCreate(s))
	se.Router.GET("/clients/{id}", handlers.HandleClientGet(s))
	se.Router.PATCH("/clients/{id}", handlers.HandleClientUpdate(s))
	se.Router.DELETE("/clients/{id}", handlers.HandleClientDelete(s))
	se.Router.GET("/clients/{id}/projects", handlers.HandleClientProjects(s))

	// ── Projects ─────────────────────────────────────────────
	se.Router.GET("/projects", handlers.HandleProjectList(s))
	se.Router.POST("/projects", handlers.HandleProjectCreate(s))
	se.Router.GET("/projects/{id}", handlers.HandleProjectGet(s))
	se.Router.PATCH("/projects/{id}", handlers.HandleProjectUpdate(s))
	se.Router.DELETE("/projects/{id}", handlers.HandleProjectDelete(s))

	// ── Project structure ────────────────────────────────────
	se.Router.POST("/projects/{id}/nodes", handlers.HandleNodeInsert(s))
	se.Router.DELETE("/projects/{id}/nodes/{nodeId}", handlers.HandleNodeRemove(s))
	se.Router.PUT("/projects/{id}/nodes/{nodeId}/quantity", handlers.HandleNodeQuantity(s))

	// ── Summary & export ─────────────────────────────────────
	se.Router.GET("/projects/{id}/summary", handlers.HandleProjectSummary(s, cfg))
	se.Router.GET("/projects/{id}/export/excel", handlers.HandleSummaryExportExcel(s, cfg))
	se.Router.GET("/projects/{id}/export/pdf", handlers.HandleSummaryExportPDF(s, cfg))

	// Redirect home to projects list
	se.Router.GET("/", func(e *core.RequestEvent) error {
		return e.Redirect(http.StatusFound, "/projects")
	})
}
