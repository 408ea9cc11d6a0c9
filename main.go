package main

import (
	"crypto/tls"
	"encoding/json"
	"errors"
	stdlog "log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"github.com/username/dividendgoal/src/config"
	"github.com/username/dividendgoal/src/handlers"
	"github.com/username/dividendgoal/src/logger"
	"github.com/username/dividendgoal/src/models"
	"github.com/username/dividendgoal/src/services"
	"github.com/username/dividendgoal/src/utils"
)

func proxyHeadersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Forwarded-Proto") == "https" {
			r.URL.Scheme = "https"
			r.TLS = &tls.ConnectionState{}
		}
		next.ServeHTTP(w, r)
	})
}

func newCalculatorService(cfg *config.AppConfig) services.CalculatorService {
	return services.NewCalculatorService(services.CalculatorOptions{
		TaxRate:         &cfg.DividendTaxRate,
		DefaultGrowth:   cfg.DefaultDividendGrowth,
		CacheExpiration: cfg.CalcCacheExpiration,
		CacheCleanup:    cfg.CalcCacheCleanup,
	})
}

func newRouter(cfg *config.AppConfig, calculatorService services.CalculatorService, stockService services.StockService, lifestyleService services.LifestyleService) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(handlers.ContextualLoggerMiddleware)
	r.Use(proxyHeadersMiddleware)
	r.Use(handlers.CORSMiddleware(cfg.AllowedOrigins))
	r.Use(handlers.RateLimitMiddleware(cfg.RateLimitInterval, cfg.RateLimitBurst))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		utils.SendJSON(w, map[string]any{
			"message": "Dividend Goal calculator is running",
			"stocks":  len(stockService.GetAllStocks()),
		})
	})

	handlers.RegisterRoutes(r,
		handlers.NewCalculatorHandler(calculatorService),
		handlers.NewStockHandler(stockService, calculatorService),
		handlers.NewLifestyleHandler(lifestyleService, stockService, calculatorService),
	)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			utils.SendJSONError(w, "Not found", http.StatusNotFound)
			return
		}
		http.NotFound(w, r)
	})
	return r
}

func runServer(cfg *config.AppConfig) error {
	logger.L.Info("Dividend Goal server starting...")

	stockService := services.NewStockService(cfg.StockDataPath)
	calculatorService := newCalculatorService(cfg)

	serverAddr := ":" + cfg.Port
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      newRouter(cfg, calculatorService, stockService, services.NewLifestyleService()),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.L.Info("Server starting", "address", serverAddr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newRootCmd() *cobra.Command {
	var cfg *config.AppConfig

	root := &cobra.Command{
		Use:          "dividendgoal",
		Short:        "Dividend income calculators: required capital, DRIP and freedom date",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg = config.LoadConfig()
			logger.InitLogger(cfg.LogLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cfg)
		},
	}

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cfg)
		},
	})

	var target, yield, contribution float64
	freedomCmd := &cobra.Command{
		Use:   "freedom",
		Short: "Project the date a monthly dividend target is reached",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd, newCalculatorService(cfg).FreedomDate(models.FreedomDateRequest{
				TargetIncome:        target,
				Yield:               yield,
				MonthlyContribution: contribution,
			}))
		},
	}
	freedomCmd.Flags().Float64Var(&target, "target", 0, "target monthly income")
	freedomCmd.Flags().Float64Var(&yield, "yield", 0, "annual dividend yield in percent")
	freedomCmd.Flags().Float64Var(&contribution, "contribution", 0, "monthly contribution")
	root.AddCommand(freedomCmd)

	var monthly, planYield float64
	var net bool
	planCmd := &cobra.Command{
		Use:   "plan",
		Short: "Capital required for a monthly dividend",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd, newCalculatorService(cfg).RequiredInvestment(monthly, planYield, net))
		},
	}
	planCmd.Flags().Float64Var(&monthly, "monthly", 0, "target monthly income")
	planCmd.Flags().Float64Var(&planYield, "yield", 0, "annual dividend yield in percent")
	planCmd.Flags().BoolVar(&net, "net", false, "treat the target as after-tax income")
	root.AddCommand(planCmd)

	var capital, dripYield float64
	dripCmd := &cobra.Command{
		Use:   "drip",
		Short: "Dividend reinvestment projection at 1, 3, 5 and 10 years",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd, newCalculatorService(cfg).Drip(capital, dripYield))
		},
	}
	dripCmd.Flags().Float64Var(&capital, "capital", 0, "starting capital")
	dripCmd.Flags().Float64Var(&dripYield, "yield", 0, "annual dividend yield in percent")
	root.AddCommand(dripCmd)

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		stdlog.Printf("dividendgoal: %v", err)
		os.Exit(1)
	}
}
