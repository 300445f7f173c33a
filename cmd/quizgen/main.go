package main

import (
	"fmt"
	"os"

	"github.com/IT-Nick/quizgen/internal/app"
)

func main() {
	fmt.Println("app starting")

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/values_example.yaml"
		// Без файла конфигурация собирается из переменных окружения.
		if _, err := os.Stat(configPath); err != nil {
			configPath = ""
		}
	}

	application, err := app.NewApp(configPath)
	if err != nil {
		panic(err)
	}

	if err := application.ListenAndServe(); err != nil {
		panic(err)
	}
}
