package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Entity labels used by the seeding metrics
const (
	entityOrganization     = "organization"
	entityAccount          = "account"
	entityAccountCategory  = "account_category"
	entityTransactionType  = "transaction_type"
	entityCurrencyCategory = "currency_category"
	entityCurrencyType     = "currency_type"
)

var (
	seededRecords = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "curr_seeded_records_total",
			Help: "Total number of records created by the seeders",
		},
		[]string{"entity"},
	)

	deletedRecords = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "curr_deleted_records_total",
			Help: "Total number of records removed by database cleanup",
		},
		[]string{"entity"},
	)
)
