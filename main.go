package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"poseidon/config"
	"poseidon/database"
	"poseidon/logger"
	"poseidon/web"
	"poseidon/web/service"

	"github.com/joho/godotenv"
	"github.com/op/go-logging"
	"github.com/spf13/cobra"
)

func runWebServer() {
	log.Printf("%v %v", config.GetName(), config.GetVersion())

	switch config.GetLogLevel() {
	case config.Debug:
		logger.InitLogger(logging.DEBUG)
	case config.Info:
		logger.InitLogger(logging.INFO)
	case config.Notice:
		logger.InitLogger(logging.NOTICE)
	case config.Warn:
		logger.InitLogger(logging.WARNING)
	case config.Error:
		logger.InitLogger(logging.ERROR)
	default:
		log.Fatal("unknown log level:", config.GetLogLevel())
	}

	if err := database.InitDB(config.GetDBPath()); err != nil {
		log.Fatal(err)
	}

	server := web.NewServer()
	if err := server.Start(); err != nil {
		log.Println(err)
		return
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGINT)
	for {
		sig := <-sigCh

		switch sig {
		case syscall.SIGHUP:
			logger.Info("received SIGHUP, restarting servers...")
			if err := server.Stop(); err != nil {
				logger.Warning("stop server err:", err)
			}
			server = web.NewServer()
			if err := server.Start(); err != nil {
				log.Println(err)
				return
			}
		default:
			if err := server.Stop(); err != nil {
				logger.Warning("stop server err:", err)
			}
			if err := database.CloseDB(); err != nil {
				logger.Warning("close db err:", err)
			}
			logger.CloseLogger()
			return
		}
	}
}

func resetAdmin() {
	if err := database.InitDB(config.GetDBPath()); err != nil {
		fmt.Println(err)
		return
	}

	username, password := database.DefaultCredentials()
	userService := service.UserService{}
	if err := userService.ResetAdmin(username, password); err != nil {
		fmt.Println("reset admin failed:", err)
		return
	}
	fmt.Println("admin credentials reset to the defaults")
	fmt.Println("username:", username)
	fmt.Println("password:", password)
}

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "poseidon",
		Short: "Poseidon back-office administration panel",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Start the web server",
		Run: func(cmd *cobra.Command, args []string) {
			runWebServer()
		},
	}

	adminCmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrator account maintenance",
	}
	adminResetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore the default administrator credentials",
		Run: func(cmd *cobra.Command, args []string) {
			resetAdmin()
		},
	}
	adminCmd.AddCommand(adminResetCmd)

	rootCmd.AddCommand(runCmd, adminCmd)

	// Running without a subcommand starts the server.
	rootCmd.Run = runCmd.Run

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
