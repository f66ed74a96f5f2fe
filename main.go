package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"judging-portal/controllers"
	"judging-portal/database"
	"judging-portal/driver"
	"judging-portal/utils"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

var db *sql.DB

func main() {
	migrateFlag := flag.Bool("migrate", false, "create tables and exit")
	seedFlag := flag.Bool("seed", false, "seed teams and judges and exit")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}
	secret := os.Getenv("SECRET")
	if secret == "" {
		log.Fatal("SECRET variable is not set")
	}

	db = driver.ConnectDB()
	defer db.Close()

	if *migrateFlag || *seedFlag {
		driverName := os.Getenv("DB_DRIVER")
		if driverName == "" {
			driverName = "mysql"
		}
		if *migrateFlag {
			if err := database.Migrate(db, driverName); err != nil {
				log.Fatal("Migration failed: ", err)
			}
			log.Println("Migrated.")
		}
		if *seedFlag {
			if err := database.Seed(db); err != nil {
				log.Fatal("Seeding failed: ", err)
			}
			log.Println("Done seeding.")
		}
		return
	}

	authController := controllers.AuthController{}
	scoreController := controllers.ScoreController{}
	adminController := controllers.AdminController{}
	router := mux.NewRouter()

	router.HandleFunc("/", healthCheck).Methods("GET")

	router.HandleFunc("/auth/login", authController.Login(db)).Methods("POST")
	router.HandleFunc("/auth/me", controllers.TokenVerifyMiddleware(authController.GetMe(db))).Methods("GET")

	router.HandleFunc("/scores/teams", controllers.TokenVerifyMiddleware(scoreController.GetTeams(db))).Methods("GET")
	router.HandleFunc("/scores/my-scores", controllers.TokenVerifyMiddleware(scoreController.GetMyScores(db))).Methods("GET")
	router.HandleFunc("/scores/submit", controllers.TokenVerifyMiddleware(scoreController.SubmitScore(db))).Methods("POST")

	router.HandleFunc("/admin/results", controllers.AdminVerifyMiddleware(adminController.GetResults(db))).Methods("GET")
	router.HandleFunc("/admin/detailed-scores", controllers.AdminVerifyMiddleware(adminController.GetDetailedScores(db))).Methods("GET")
	router.HandleFunc("/admin/stats", controllers.AdminVerifyMiddleware(adminController.GetStats(db))).Methods("GET")
	router.HandleFunc("/admin/export", controllers.AdminVerifyMiddleware(adminController.ExportReport(db))).Methods("GET")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	log.Println("Server started on port " + port)
	log.Fatal(http.ListenAndServe(":"+port, controllers.CORSMiddleware(router)))
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	utils.ResponseJSON(w, map[string]string{
		"status": "OK",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
