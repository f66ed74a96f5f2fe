package database

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"judging-portal/utils"
)

var schemaMySQL = []string{
	`CREATE TABLE IF NOT EXISTS judges (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		expertise VARCHAR(255) NOT NULL DEFAULT '',
		is_admin BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS teams (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL UNIQUE,
		college VARCHAR(255),
		lead_name VARCHAR(255)
	)`,
	`CREATE TABLE IF NOT EXISTS scores (
		id INT AUTO_INCREMENT PRIMARY KEY,
		judge_id INT NOT NULL,
		team_id INT NOT NULL,
		session_type VARCHAR(20) NOT NULL,
		innovation INT NOT NULL,
		creativity INT NOT NULL,
		feasibility INT NOT NULL,
		presentation INT NOT NULL,
		design INT,
		user_experience INT,
		comments TEXT,
		total_score INT NOT NULL,
		final_score DOUBLE NOT NULL,
		updated_at DATETIME NOT NULL,
		UNIQUE KEY uq_judge_team_session (judge_id, team_id, session_type),
		FOREIGN KEY (judge_id) REFERENCES judges(id),
		FOREIGN KEY (team_id) REFERENCES teams(id)
	)`,
}

var schemaSQLite = []string{
	`CREATE TABLE IF NOT EXISTS judges (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		expertise TEXT NOT NULL DEFAULT '',
		is_admin BOOLEAN NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS teams (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		college TEXT,
		lead_name TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS scores (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		judge_id INTEGER NOT NULL,
		team_id INTEGER NOT NULL,
		session_type TEXT NOT NULL,
		innovation INTEGER NOT NULL,
		creativity INTEGER NOT NULL,
		feasibility INTEGER NOT NULL,
		presentation INTEGER NOT NULL,
		design INTEGER,
		user_experience INTEGER,
		comments TEXT,
		total_score INTEGER NOT NULL,
		final_score REAL NOT NULL,
		updated_at TEXT NOT NULL,
		UNIQUE (judge_id, team_id, session_type),
		FOREIGN KEY (judge_id) REFERENCES judges(id),
		FOREIGN KEY (team_id) REFERENCES teams(id)
	)`,
}

// Migrate creates the tables for the given driver if they do not exist.
// The DDL is idempotent; existing data is preserved.
func Migrate(db *sql.DB, driverName string) error {
	var stmts []string
	switch driverName {
	case "mysql":
		stmts = schemaMySQL
	case "sqlite3":
		stmts = schemaSQLite
	default:
		return fmt.Errorf("unsupported driver: %s", driverName)
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

type seedTeam struct {
	name    string
	college string
	lead    string
}

type seedJudge struct {
	name      string
	email     string
	expertise string
	isAdmin   bool
}

var seedTeams = []seedTeam{
	{"Team Prime", "Canara Engineering College", "Pramod Achar"},
	{"AI Alchemists", "", "Aashna Mathias"},
	{"Tech Titans", "Canara Engineering College", "Parineeta G"},
	{"Echobit", "Siddaganga Institute of Technology", "Diksha Lamle"},
	{"QWERTY", "NMAM Institute of Technology", "Calvin Dsouza"},
	{"Innov8r", "Siddaganga Institute of Technology", "Aryan Gupta"},
	{"Asthra", "APS College of Engineering", "Prerana Madhusudhan"},
	{"Team FarmX", "Mangalore Institute of Technology", "Abhishek Mendon"},
	{"BlockHarvest", "NMAM Institute of Technology", "Vineeth Bhatta"},
	{"The Coders", "Alvas Institute of Engineering", "Nivedita Kagale"},
	{"Gradients", "Siddaganga Institute of Technology", "Prasuri"},
	{"Nexora", "VCET Puttur", "Anusha Kharvi"},
}

var seedJudges = []seedJudge{
	{"Sujith Kumar", "sujith@judges.portal", "Solution Architecture", false},
	{"Prashanth Shetty", "prashanth@judges.portal", "Business Operations", false},
	{"Krishna Rao", "krishna@judges.portal", "Technology Compliance", false},
	{"Nagaraj Pandith", "nagaraj@judges.portal", "Software Engineering", false},
	{"Bhargavi Nayak", "bhargavi@judges.portal", "Sr. Software Engineer", false},
	{"Praveen Castelino", "praveen@judges.portal", "CTO & Co-Founder", false},
	{"Admin", "admin@judges.portal", "Administrator", true},
}

// Seed inserts the event's teams and judges, skipping rows that already
// exist. Judge passwords come from SEED_JUDGE_PASSWORD and
// SEED_ADMIN_PASSWORD so real credentials never live in the source.
func Seed(db *sql.DB) error {
	for _, t := range seedTeams {
		var existingID int
		err := db.QueryRow("SELECT id FROM teams WHERE name = ?", t.name).Scan(&existingID)
		if err == nil {
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("seed: checking team %q: %w", t.name, err)
		}

		var college, lead interface{}
		if t.college != "" {
			college = t.college
		}
		if t.lead != "" {
			lead = t.lead
		}
		_, err = db.Exec("INSERT INTO teams (name, college, lead_name) VALUES (?, ?, ?)", t.name, college, lead)
		if err != nil {
			return fmt.Errorf("seed: inserting team %q: %w", t.name, err)
		}
	}

	judgePassword := os.Getenv("SEED_JUDGE_PASSWORD")
	if judgePassword == "" {
		judgePassword = "judge123"
	}
	adminPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin123"
	}

	for _, j := range seedJudges {
		var existingID int
		err := db.QueryRow("SELECT id FROM judges WHERE email = ?", j.email).Scan(&existingID)
		if err == nil {
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("seed: checking judge %q: %w", j.email, err)
		}

		password := judgePassword
		if j.isAdmin {
			password = adminPassword
		}
		hash, err := utils.HashPassword(password)
		if err != nil {
			return fmt.Errorf("seed: hashing password for %q: %w", j.email, err)
		}

		_, err = db.Exec(
			"INSERT INTO judges (name, email, password_hash, expertise, is_admin) VALUES (?, ?, ?, ?, ?)",
			j.name, j.email, hash, j.expertise, j.isAdmin,
		)
		if err != nil {
			return fmt.Errorf("seed: inserting judge %q: %w", j.email, err)
		}
	}

	log.Printf("Seeded %d teams and %d judges", len(seedTeams), len(seedJudges))
	return nil
}
