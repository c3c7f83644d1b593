package core

import "testing"

func TestCategoriesOrder(t *testing.T) {
	want := [4]Category{CategorySpending, CategorySavings, CategoryBills, CategoryInsurance}
	if Categories() != want {
		t.Fatalf("category order changed: %v", Categories())
	}
}

func TestContractAddressesValidate(t *testing.T) {
	good := ContractAddresses{
		RemittanceSplit: "http://split:8080",
		SavingsGoals:    "http://goals:8080",
		BillPayments:    "http://bills:8080",
		Insurance:       "http://insurance:8080",
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	// Family wallet is optional; the four consumed services are not.
	bads := []ContractAddresses{
		{SavingsGoals: "a", BillPayments: "b", Insurance: "c"},
		{RemittanceSplit: "a", BillPayments: "b", Insurance: "c"},
		{RemittanceSplit: "a", SavingsGoals: "b", Insurance: "c"},
		{RemittanceSplit: "a", SavingsGoals: "b", BillPayments: "c"},
	}
	for i, a := range bads {
		if err := a.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}
