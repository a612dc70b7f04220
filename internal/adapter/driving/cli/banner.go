package cli

import (
	"fmt"

	"github.com/elneves81/estagios-dashboard-go/pkg/version"
	"github.com/fatih/color"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
         /$$$$$$$$  /$$$$$$  /$$$$$$$$  /$$$$$$   /$$$$$$  /$$$$$$  /$$$$$$   /$$$$$$
        | $$_____/ /$$__  $$|__  $$__/ /$$__  $$ /$$__  $$|_  $$_/ /$$__  $$ /$$__  $$
        | $$      | $$  \__/   | $$   | $$  \ $$| $$  \__/  | $$  | $$  \ $$| $$  \__/
        | $$$$$   |  $$$$$$    | $$   | $$$$$$$$| $$ /$$$$  | $$  | $$  | $$|  $$$$$$
        | $$__/    \____  $$   | $$   | $$__  $$| $$|_  $$  | $$  | $$  | $$ \____  $$
        | $$       /$$  \ $$   | $$   | $$  | $$| $$  \ $$  | $$  | $$  | $$ /$$  \ $$
        | $$$$$$$$|  $$$$$$/   | $$   | $$  | $$|  $$$$$$/ /$$$$$$|  $$$$$$/|  $$$$$$/
        |________/ \______/    |__/   |__/  |__/ \______/ |______/ \______/  \______/
        `
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(green(banner))

	// Obtem a string formatada da versão através do pacote version
	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("Estágios Dashboard CLI (v%s)", formattedVersion)))
}

// checkLatestVersion verifica se uma versão mais recente está disponível.
func checkLatestVersion(currentVersion string) {
	// Usa a função do pacote version para verificar por atualizações
	version.CheckLatestVersion(currentVersion)
}
