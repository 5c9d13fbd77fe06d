package main

import (
	_ "solarvizyon/docs"
	"solarvizyon/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           SolarVizyon API
// @version         1.0
// @description     Solar PV sizing and financial-feasibility estimator (analyses + lead capture) backed by DynamoDB.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
