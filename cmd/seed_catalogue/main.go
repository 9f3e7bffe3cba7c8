// seed_catalogue génère un script SQL pour peupler le catalogue matériel à
// partir d'un export CSV Layher (encodage Windows-1252, séparateur ;) :
// reference;designation;poids_kg;categorie
//
// Usage : go run ./cmd/seed_catalogue [chemin/catalogue.csv]
// Par défaut cherche catalogue.csv dans le répertoire courant.
// Écrit : internal/infrastructure/postgres/migrations/002_seed_catalogue.sql
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

func main() {
	csvPath := "catalogue.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ouvrir CSV : %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	// Les exports Layher arrivent en Windows-1252, pas en UTF-8.
	reader := csv.NewReader(transform.NewReader(f, charmap.Windows1252.NewDecoder()))
	reader.Comma = ';'
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "lire CSV : %v\n", err)
		os.Exit(1)
	}

	type ligne struct{ reference, designation, poids, categorie string }
	var lignes []ligne
	vues := make(map[string]bool)
	for i, rec := range records {
		if i == 0 && strings.EqualFold(strings.TrimSpace(rec[0]), "reference") {
			continue // en-tête
		}
		if len(rec) < 3 {
			fmt.Fprintf(os.Stderr, "ligne %d ignorée : %d colonnes\n", i+1, len(rec))
			continue
		}
		ref := strings.TrimSpace(rec[0])
		if ref == "" || vues[ref] {
			continue
		}
		vues[ref] = true
		l := ligne{
			reference:   ref,
			designation: strings.TrimSpace(rec[1]),
			poids:       strings.ReplaceAll(strings.TrimSpace(rec[2]), ",", "."),
		}
		if len(rec) > 3 {
			l.categorie = strings.TrimSpace(rec[3])
		}
		lignes = append(lignes, l)
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_catalogue.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "créer le fichier : %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Catalogue matériel d'échafaudage\n")
	out.WriteString("-- Généré depuis l'export CSV Layher par cmd/seed_catalogue\n\n")
	for _, l := range lignes {
		cat := "NULL"
		if l.categorie != "" {
			cat = "'" + escapeSQL(l.categorie) + "'"
		}
		fmt.Fprintf(out, "INSERT INTO catalogue_articles (id, reference, designation, designation_norm, poids_unitaire, categorie, actif, created_at, updated_at)\n")
		fmt.Fprintf(out, "VALUES (gen_random_uuid(), '%s', '%s', lower(unaccent('%s')), %s, %s, TRUE, now(), now())\n",
			escapeSQL(l.reference), escapeSQL(l.designation), escapeSQL(l.designation), l.poids, cat)
		out.WriteString("ON CONFLICT (reference) DO UPDATE SET designation = EXCLUDED.designation, poids_unitaire = EXCLUDED.poids_unitaire;\n")
	}

	fmt.Printf("Généré %s : %d articles\n", outPath, len(lignes))
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// findModuleRoot remonte jusqu'au répertoire contenant go.mod.
func findModuleRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "."
		}
		dir = parent
	}
}
