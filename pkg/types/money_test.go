package types

import (
	"encoding/json"
	"testing"
)

func TestMoneyMarshalsAsNumber(t *testing.T) {
	m := MoneyFromFloat(10)
	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	if string(data) != "10" {
		t.Fatalf("expected bare number, got %s", data)
	}

	m = MoneyFromFloat(19.99)
	data, err = json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	if string(data) != "19.99" {
		t.Fatalf("expected 19.99, got %s", data)
	}
}

func TestMoneyUnmarshalAcceptsNumbersAndStrings(t *testing.T) {
	var m Money
	if err := json.Unmarshal([]byte("50"), &m); err != nil {
		t.Fatalf("unmarshal number: %v", err)
	}
	if m.String() != "50.00" {
		t.Fatalf("unexpected value %s", m.String())
	}

	if err := json.Unmarshal([]byte(`"12.5"`), &m); err != nil {
		t.Fatalf("unmarshal string: %v", err)
	}
	if m.String() != "12.50" {
		t.Fatalf("unexpected value %s", m.String())
	}

	if err := json.Unmarshal([]byte(`"not-a-number"`), &m); err == nil {
		t.Fatal("expected error for junk input")
	}
}

func TestMoneyArithmetic(t *testing.T) {
	pen := MoneyFromFloat(10)
	notebook := MoneyFromFloat(50)

	total := pen.MulInt(2).Add(notebook.MulInt(1))
	if total.String() != "70.00" {
		t.Fatalf("expected 70.00, got %s", total.String())
	}

	if !notebook.GreaterThan(pen) {
		t.Fatal("expected 50 > 10")
	}
	if ZeroMoney().IsNegative() {
		t.Fatal("zero must not be negative")
	}
}
