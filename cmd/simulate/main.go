package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/fatih/color"
)

// Walks a document session through a realistic fill: identity fields,
// a second tenant, financial terms, then progress and a markdown export.
// Run against a live server: APP_URL and credentials via env.

var baseURL = getEnv("APP_URL", "http://localhost:3000") + "/api"

var (
	header  = color.New(color.FgCyan, color.Bold)
	success = color.New(color.FgGreen)
	failure = color.New(color.FgRed)
)

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func sendRequest(method, url, token string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func prettyPrint(raw []byte) {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		fmt.Println(string(raw))
		return
	}
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

func authenticate() string {
	email := getEnv("SIM_EMAIL", "simulate@example.com")
	password := getEnv("SIM_PASSWORD", "simulate-password")

	creds := map[string]string{"email": email, "password": password, "full_name": "Simulation"}
	resp, body, err := sendRequest("POST", "/auth/v1/register", "", creds)
	if err != nil {
		log.Fatalf("register failed: %v", err)
	}
	if resp.StatusCode == http.StatusConflict {
		resp, body, err = sendRequest("POST", "/auth/v1/login", "", creds)
		if err != nil || resp.StatusCode != http.StatusOK {
			log.Fatalf("login failed: %v (%s)", err, string(body))
		}
	}

	var parsed struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil || parsed.Data.Token == "" {
		log.Fatalf("no token in auth response: %s", string(body))
	}
	return parsed.Data.Token
}

func main() {
	header.Println("=== Lease Document Fill Simulation ===")

	token := authenticate()
	success.Println("Authenticated")

	sessionID := fmt.Sprintf("sim-%d", time.Now().Unix())
	base := "/document/v1/" + sessionID

	step(token, "Fill landlord and tenant identity", "POST", base+"/values", map[string]interface{}{
		"updates": []map[string]interface{}{
			{"path": "designation_parties.bailleur.nom_prenom", "value": "Marie Dupont"},
			{"path": "designation_parties.locataires.liste[0].nom_prenom", "value": "Jean Martin"},
			{"path": "designation_parties.locataires.liste[0].date_naissance", "value": "12/03/1990"},
		},
	})

	step(token, "Add a second tenant", "POST", base+"/list", map[string]interface{}{
		"path": "designation_parties.locataires.liste",
	})

	step(token, "Fill the second tenant", "POST", base+"/values", map[string]interface{}{
		"updates": []map[string]interface{}{
			{"path": "designation_parties.locataires.liste[1].nom_prenom", "value": "Claire Petit"},
		},
	})

	step(token, "Financial terms (string number is coerced)", "POST", base+"/values", map[string]interface{}{
		"updates": []map[string]interface{}{
			{"path": "conditions_financieres.loyer.montant_loyer_mensuel", "value": "850"},
			{"path": "conditions_financieres.loyer.modalites_paiement.date_paiement", "value": "le 5 du mois"},
		},
	})

	step(token, "Progress", "GET", base+"/progress", nil)
	step(token, "Missing identity fields", "GET", base+"/missing?categories=designation_parties", nil)
	step(token, "List state", "GET", base+"/list?path=designation_parties.locataires.liste", nil)

	header.Println("\n--- Markdown export ---")
	resp, body, err := sendRequest("GET", "/export/v1/"+sessionID+"/markdown", token, nil)
	if err != nil || resp.StatusCode != http.StatusOK {
		failure.Printf("export failed: %v (%s)\n", err, string(body))
		return
	}
	fmt.Println(string(body))

	success.Println("\nSimulation complete")
}

func step(token, label, method, url string, body interface{}) {
	header.Printf("\n--- %s ---\n", label)
	resp, respBody, err := sendRequest(method, url, token, body)
	if err != nil {
		failure.Printf("request failed: %v\n", err)
		os.Exit(1)
	}
	if resp.StatusCode >= 400 {
		failure.Printf("HTTP %d\n", resp.StatusCode)
	}
	prettyPrint(respBody)
}
