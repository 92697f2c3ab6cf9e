package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"

	"prestanet-backend/internal/domain/installment"
	"prestanet-backend/internal/domain/loan"
)

// RefinancePolicy decides the loan state after an accepted refinancing.
// One policy per deployment; applied uniformly.
type RefinancePolicy string

const (
	// RefinanceKeepActive leaves the loan ACTIVE after regeneration.
	RefinanceKeepActive RefinancePolicy = "active"
	// RefinanceMarkRefinanced transitions the loan to REFINANCED.
	RefinanceMarkRefinanced RefinancePolicy = "refinanced"
)

func (p RefinancePolicy) LoanState() loan.State {
	if p == RefinanceMarkRefinanced {
		return loan.StateRefinanced
	}
	return loan.StateActive
}

type Config struct {
	AppPort string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	RedisAddr string
	RedisDB   int

	IdempTTLSecs int

	// Installment cadence: calendar months in production, minutes in dev/test.
	CadenceUnit installment.CadenceUnit
	CadenceStep int

	RefinancePolicy RefinancePolicy

	// Flat surcharge applied to each overdue installment by the penalty engine.
	PenaltyRate float64

	// Interval of the background overdue sweep; 0 disables the ticker.
	OverdueSweepSecs int
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getenvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func Load() *Config {
	c := &Config{
		AppPort:   getenv("APP_PORT", "8080"),
		MySQLHost: getenv("MYSQL_HOST", "mysql"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "prestanet"),
		MySQLUser: getenv("MYSQL_USER", "prestanet"),
		MySQLPass: getenv("MYSQL_PASS", "prestanet"),

		RedisAddr:    getenv("REDIS_ADDR", "redis:6379"),
		RedisDB:      getenvInt("REDIS_DB", 0),
		IdempTTLSecs: getenvInt("IDEMPOTENCY_TTL_SECONDS", 300),

		CadenceUnit:      installment.CadenceUnit(getenv("CADENCE_UNIT", string(installment.CadenceMonth))),
		CadenceStep:      getenvInt("CADENCE_STEP", 1),
		RefinancePolicy:  RefinancePolicy(getenv("REFINANCE_STATE_POLICY", string(RefinanceKeepActive))),
		OverdueSweepSecs: getenvInt("OVERDUE_SWEEP_SECONDS", 0),
		PenaltyRate:      0.02,
	}
	if v := os.Getenv("PENALTY_RATE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.PenaltyRate = f
		}
	}
	return c
}

func (c *Config) Validate() error {
	if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
	}
	// ensure port is valid
	if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.CadenceUnit != installment.CadenceMonth && c.CadenceUnit != installment.CadenceMinute {
		return fmt.Errorf("invalid CADENCE_UNIT %q (want month or minute)", c.CadenceUnit)
	}
	if c.CadenceStep <= 0 {
		return fmt.Errorf("invalid CADENCE_STEP %d", c.CadenceStep)
	}
	if c.RefinancePolicy != RefinanceKeepActive && c.RefinancePolicy != RefinanceMarkRefinanced {
		return fmt.Errorf("invalid REFINANCE_STATE_POLICY %q (want active or refinanced)", c.RefinancePolicy)
	}
	if c.PenaltyRate < 0 {
		return fmt.Errorf("invalid PENALTY_RATE %v", c.PenaltyRate)
	}
	return nil
}

func (c *Config) Cadence() installment.Cadence {
	return installment.Cadence{Unit: c.CadenceUnit, Step: c.CadenceStep}
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// multiStatements=true is handy for migrations; parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
