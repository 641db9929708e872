package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ndewijer/Business-Ledger-Backend/internal/model"
	"github.com/ndewijer/Business-Ledger-Backend/internal/testutil"
)

func setupTransactionHandler(t *testing.T) (*TransactionHandler, *sql.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return NewTransactionHandler(testutil.NewTestTransactionService(t, db)), db
}

func TestTransactionHandler_TransactionsPerCompany(t *testing.T) {
	t.Run("returns transactions newest first", func(t *testing.T) {
		handler, db := setupTransactionHandler(t)
		company := testutil.NewCompany().Build(t, db)
		testutil.NewTransaction(company.ID).WithDate(time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)).Build(t, db)
		newest := testutil.NewTransaction(company.ID).WithDate(time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)).Build(t, db)

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/company/"+company.ID+"/transaction", map[string]string{"uuid": company.ID})
		w := httptest.NewRecorder()

		handler.TransactionsPerCompany(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var transactions []model.Transaction
		if err := json.NewDecoder(w.Body).Decode(&transactions); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(transactions) != 2 {
			t.Fatalf("Expected 2 transactions, got %d", len(transactions))
		}
		if transactions[0].ID != newest.ID {
			t.Errorf("Expected newest transaction first, got %s", transactions[0].ID)
		}
	})

	t.Run("returns 404 for unknown company", func(t *testing.T) {
		handler, _ := setupTransactionHandler(t)
		id := testutil.MakeID()

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/company/"+id+"/transaction", map[string]string{"uuid": id})
		w := httptest.NewRecorder()

		handler.TransactionsPerCompany(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d", w.Code)
		}
	})

	t.Run("returns 500 when database is closed", func(t *testing.T) {
		handler, db := setupTransactionHandler(t)
		id := testutil.MakeID()
		db.Close()

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/company/"+id+"/transaction", map[string]string{"uuid": id})
		w := httptest.NewRecorder()

		handler.TransactionsPerCompany(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("Expected 500, got %d", w.Code)
		}
	})
}

func TestTransactionHandler_GetTransaction(t *testing.T) {
	t.Run("returns transaction", func(t *testing.T) {
		handler, db := setupTransactionHandler(t)
		company := testutil.NewCompany().Build(t, db)
		tx := testutil.NewTransaction(company.ID).
			WithAccount("Consulting").
			WithAmount("1250.50").
			WithDescription("Quarterly retainer").
			Build(t, db)

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/transaction/"+tx.ID, map[string]string{"uuid": tx.ID})
		w := httptest.NewRecorder()

		handler.GetTransaction(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var got model.Transaction
		if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if got.Account != "Consulting" || got.Description != "Quarterly retainer" {
			t.Errorf("Unexpected transaction: %+v", got)
		}
		if got.Amount.String() != "1250.5" {
			t.Errorf("Expected amount 1250.5, got %s", got.Amount)
		}
	})

	t.Run("returns 404 for unknown transaction", func(t *testing.T) {
		handler, _ := setupTransactionHandler(t)
		id := testutil.MakeID()

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/transaction/"+id, map[string]string{"uuid": id})
		w := httptest.NewRecorder()

		handler.GetTransaction(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d", w.Code)
		}
	})
}

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	t.Run("creates transaction", func(t *testing.T) {
		handler, db := setupTransactionHandler(t)
		company := testutil.NewCompany().Build(t, db)

		body := `{"date":"2024-03-10","account":"Office Supplies","amount":89.99,"type":"expense"}`
		req := testutil.NewJSONRequestWithURLParams(http.MethodPost, "/api/company/"+company.ID+"/transaction",
			body, map[string]string{"uuid": company.ID})
		w := httptest.NewRecorder()

		handler.CreateTransaction(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var created model.Transaction
		if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if created.CompanyID != company.ID {
			t.Errorf("Expected companyId %s, got %s", company.ID, created.CompanyID)
		}
		if created.Type != model.TransactionTypeExpense {
			t.Errorf("Expected type expense, got %s", created.Type)
		}

		var amount string
		if err := db.QueryRow(`SELECT amount FROM transactions WHERE id = ?`, created.ID).Scan(&amount); err != nil {
			t.Fatalf("Failed to read stored transaction: %v", err)
		}
		if amount != "89.99" {
			t.Errorf("Expected stored amount 89.99, got %s", amount)
		}
	})

	t.Run("accepts zero amount", func(t *testing.T) {
		handler, db := setupTransactionHandler(t)
		company := testutil.NewCompany().Build(t, db)

		body := `{"date":"2024-03-10","account":"Adjustment","amount":0,"type":"asset"}`
		req := testutil.NewJSONRequestWithURLParams(http.MethodPost, "/", body, map[string]string{"uuid": company.ID})
		w := httptest.NewRecorder()

		handler.CreateTransaction(w, req)

		if w.Code != http.StatusCreated {
			t.Errorf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"negative amount", `{"date":"2024-03-10","account":"Rent","amount":-5,"type":"expense"}`, "amount"},
		{"missing amount", `{"date":"2024-03-10","account":"Rent","type":"expense"}`, "amount"},
		{"unknown type", `{"date":"2024-03-10","account":"Rent","amount":5,"type":"equity"}`, "type"},
		{"bad date", `{"date":"10/03/2024","account":"Rent","amount":5,"type":"expense"}`, "date"},
		{"blank account", `{"date":"2024-03-10","account":"   ","amount":5,"type":"expense"}`, "account"},
	}

	for _, tt := range tests {
		t.Run("returns 400 for "+tt.name, func(t *testing.T) {
			handler, db := setupTransactionHandler(t)
			company := testutil.NewCompany().Build(t, db)

			req := testutil.NewJSONRequestWithURLParams(http.MethodPost, "/", tt.body, map[string]string{"uuid": company.ID})
			w := httptest.NewRecorder()

			handler.CreateTransaction(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
			}

			resp := decodeError(t, w)
			details, ok := resp.Details.(map[string]interface{})
			if !ok || details[tt.field] == nil {
				t.Errorf("Expected %s field error, got %v", tt.field, resp.Details)
			}
		})
	}

	t.Run("returns 404 for unknown company", func(t *testing.T) {
		handler, _ := setupTransactionHandler(t)
		id := testutil.MakeID()

		body := `{"date":"2024-03-10","account":"Rent","amount":5,"type":"expense"}`
		req := testutil.NewJSONRequestWithURLParams(http.MethodPost, "/", body, map[string]string{"uuid": id})
		w := httptest.NewRecorder()

		handler.CreateTransaction(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d", w.Code)
		}
	})
}

func TestTransactionHandler_UpdateTransaction(t *testing.T) {
	t.Run("updates provided fields", func(t *testing.T) {
		handler, db := setupTransactionHandler(t)
		company := testutil.NewCompany().Build(t, db)
		tx := testutil.NewTransaction(company.ID).WithAccount("Sales").WithAmount("100").Build(t, db)

		req := testutil.NewJSONRequestWithURLParams(http.MethodPut, "/api/transaction/"+tx.ID,
			`{"amount":250}`, map[string]string{"uuid": tx.ID})
		w := httptest.NewRecorder()

		handler.UpdateTransaction(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var updated model.Transaction
		if err := json.NewDecoder(w.Body).Decode(&updated); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if updated.Amount.String() != "250" {
			t.Errorf("Expected amount 250, got %s", updated.Amount)
		}
		if updated.Account != "Sales" {
			t.Errorf("Expected account unchanged, got %q", updated.Account)
		}
	})

	t.Run("returns 400 for invalid type", func(t *testing.T) {
		handler, db := setupTransactionHandler(t)
		company := testutil.NewCompany().Build(t, db)
		tx := testutil.NewTransaction(company.ID).Build(t, db)

		req := testutil.NewJSONRequestWithURLParams(http.MethodPut, "/", `{"type":"revenue"}`, map[string]string{"uuid": tx.ID})
		w := httptest.NewRecorder()

		handler.UpdateTransaction(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})

	t.Run("returns 404 for unknown transaction", func(t *testing.T) {
		handler, _ := setupTransactionHandler(t)
		id := testutil.MakeID()

		req := testutil.NewJSONRequestWithURLParams(http.MethodPut, "/", `{"amount":1}`, map[string]string{"uuid": id})
		w := httptest.NewRecorder()

		handler.UpdateTransaction(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d", w.Code)
		}
	})
}

func TestTransactionHandler_DeleteTransaction(t *testing.T) {
	t.Run("deletes transaction", func(t *testing.T) {
		handler, db := setupTransactionHandler(t)
		company := testutil.NewCompany().Build(t, db)
		tx := testutil.NewTransaction(company.ID).Build(t, db)

		req := testutil.NewRequestWithURLParams(http.MethodDelete, "/api/transaction/"+tx.ID, map[string]string{"uuid": tx.ID})
		w := httptest.NewRecorder()

		handler.DeleteTransaction(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("Expected 204, got %d", w.Code)
		}

		if count := testutil.CountRows(t, db, "transactions", ""); count != 0 {
			t.Errorf("Expected no transactions, found %d", count)
		}
	})

	t.Run("returns 404 for unknown transaction", func(t *testing.T) {
		handler, _ := setupTransactionHandler(t)
		id := testutil.MakeID()

		req := testutil.NewRequestWithURLParams(http.MethodDelete, "/", map[string]string{"uuid": id})
		w := httptest.NewRecorder()

		handler.DeleteTransaction(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d", w.Code)
		}
	})
}
