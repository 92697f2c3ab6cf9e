package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"prestanet-backend/internal/adapter/auditlog"
	httpadp "prestanet-backend/internal/adapter/http"
	"prestanet-backend/internal/adapter/middleware"
	"prestanet-backend/internal/adapter/notifier"
	"prestanet-backend/internal/adapter/repository/mysql"
	"prestanet-backend/internal/config"
	"prestanet-backend/internal/domain/audit"
	borrowerDomain "prestanet-backend/internal/domain/borrower"
	instDomain "prestanet-backend/internal/domain/installment"
	loanDomain "prestanet-backend/internal/domain/loan"
	"prestanet-backend/internal/domain/notification"
	requestDomain "prestanet-backend/internal/domain/request"
	"prestanet-backend/internal/infrastructure/cache"
	"prestanet-backend/internal/infrastructure/db"
	borroweruc "prestanet-backend/internal/usecase/borrower"
	delinquencyuc "prestanet-backend/internal/usecase/delinquency"
	installmentuc "prestanet-backend/internal/usecase/installment"
	loanuc "prestanet-backend/internal/usecase/loan"
	requestuc "prestanet-backend/internal/usecase/request"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := gdb.AutoMigrate(
		&borrowerDomain.Borrower{},
		&loanDomain.Loan{},
		&instDomain.Installment{},
		&requestDomain.LoanRequest{},
		&requestDomain.RefinancingRequest{},
		&notification.Notification{},
		&audit.Entry{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	borrowers := mysql.NewBorrowerRepository(gdb)
	loans := mysql.NewLoanRepository(gdb)
	installments := mysql.NewInstallmentRepository(gdb)
	loanReqs := mysql.NewLoanRequestRepository(gdb)
	refiReqs := mysql.NewRefinancingRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	notifRec := notifier.NewRecorder(gdb)
	auditRec := auditlog.NewRecorder(gdb)

	cadence := cfg.Cadence()
	borrowerUC := borroweruc.NewUsecase(borrowers)
	loanUC := loanuc.NewUsecase(loans, borrowers, installments, uow, cadence)
	instUC := installmentuc.NewUsecase(installments, loans, uow)
	delinqUC := delinquencyuc.NewUsecase(installments, uow, cfg.PenaltyRate)
	reqUC := requestuc.NewUsecase(requestuc.Params{
		UoW:            uow,
		LoanRequests:   loanReqs,
		Refinancings:   refiReqs,
		Loans:          loans,
		Notifier:       notifRec,
		Auditor:        auditRec,
		Cadence:        cadence,
		RefinanceState: cfg.RefinancePolicy.LoanState(),
	})

	h := httpadp.NewHandler()
	bh := httpadp.NewBorrowerHandler(borrowerUC)
	lh := httpadp.NewLoanHandler(loanUC)
	ih := httpadp.NewInstallmentHandler(instUC, notifRec)
	rh := httpadp.NewRequestHandler(reqUC)
	fh := httpadp.NewRefinancingHandler(reqUC)
	dh := httpadp.NewDelinquencyHandler(delinqUC)
	nh := httpadp.NewNotificationHandler(notifRec)
	ah := httpadp.NewAuditHandler(auditRec)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())
	idemp := middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	e.GET("/health", h.Health)

	e.POST("/borrowers", bh.Register, idemp)
	e.GET("/borrowers", bh.List)
	e.GET("/borrowers/:borrower_id", bh.Get)
	e.GET("/borrowers/by-national-id/:national_id", bh.GetByNationalID)
	e.PATCH("/borrowers/:borrower_id/contact", bh.UpdateContact, idemp)
	e.GET("/borrowers/:borrower_id/loans", lh.ListByBorrower)
	e.GET("/borrowers/:borrower_id/installments", ih.ByBorrower)
	e.GET("/borrowers/:borrower_id/delinquency", dh.Status)
	e.POST("/borrowers/:borrower_id/penalty", dh.ApplyPenalty, idemp)

	e.POST("/loans", lh.Create, idemp)
	e.GET("/loans", lh.List)
	e.GET("/loans/:loan_id", lh.Get)
	e.POST("/loans/:loan_id/cancel", lh.Cancel, idemp)
	e.PATCH("/loans/:loan_id/state", lh.UpdateState, idemp)
	e.GET("/loans/:loan_id/installments", ih.ByLoan)

	e.GET("/installments", ih.List)
	e.GET("/installments/:installment_id", ih.Get)
	e.POST("/installments/:installment_id/payments", ih.Pay, idemp)
	e.POST("/installments/sweep-overdue", ih.SweepOverdue)
	e.POST("/installments/remind", ih.Remind)

	e.POST("/loan-requests", rh.Submit, idemp)
	e.GET("/loan-requests", rh.List)
	e.POST("/loan-requests/:request_id/accept", rh.Accept, idemp)
	e.POST("/loan-requests/:request_id/reject", rh.Reject, idemp)

	e.POST("/refinancing-requests", fh.Submit, idemp)
	e.GET("/refinancing-requests", fh.List)
	e.POST("/refinancing-requests/:request_id/accept", fh.Accept, idemp)
	e.POST("/refinancing-requests/:request_id/reject", fh.Reject, idemp)

	e.GET("/notifications/pending", nh.ListPending)
	e.POST("/notifications/dispatch", nh.Dispatch)
	e.GET("/audit-logs", ah.List)

	if cfg.OverdueSweepSecs > 0 {
		go runOverdueSweep(instUC, time.Duration(cfg.OverdueSweepSecs)*time.Second)
	}

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

// runOverdueSweep flips due PENDING installments to OVERDUE on a fixed
// interval. The sweep is idempotent, so overlapping with the HTTP-triggered
// one is harmless.
func runOverdueSweep(uc *installmentuc.Usecase, every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for range t.C {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		n, err := uc.MarkOverdue(ctx)
		cancel()
		if err != nil {
			log.Printf("overdue sweep: %v", err)
			continue
		}
		if n > 0 {
			log.Printf("overdue sweep: marked %d installment(s)", n)
		}
	}
}
