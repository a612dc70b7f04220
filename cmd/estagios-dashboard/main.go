package main

import (
	"fmt"
	"os"

	"github.com/elneves81/estagios-dashboard-go/internal/adapter/driven/api"
	"github.com/elneves81/estagios-dashboard-go/internal/adapter/driven/config"
	"github.com/elneves81/estagios-dashboard-go/internal/adapter/driven/export"
	"github.com/elneves81/estagios-dashboard-go/internal/adapter/driven/prefs"
	"github.com/elneves81/estagios-dashboard-go/internal/adapter/driving/cli"
	"github.com/elneves81/estagios-dashboard-go/internal/application/usecase"
	"github.com/elneves81/estagios-dashboard-go/pkg/console"
	"github.com/elneves81/estagios-dashboard-go/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	prefsRepo, err := prefs.NewPreferencesRepository("")
	if err != nil {
		// Preferências são opcionais; sem elas o relatório ainda roda
		consoleImpl.LogWarning("Preferências desabilitadas: %s", err)
		prefsRepo = nil
	}

	// Inicializa o caso de uso
	relatorioUseCase := usecase.NewRelatorioUseCase(
		api.NewVagasRepository,
		exportRepo,
		configRepo,
		prefsRepo,
		consoleImpl,
	)

	// Define o caso de uso no aplicativo CLI
	app.SetRelatorioUseCase(relatorioUseCase)

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
