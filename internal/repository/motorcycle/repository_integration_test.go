//go:build integration

package repository_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/samber/lo"

	"github.com/you-humble/motorcycle-registry/internal/model"
	repository "github.com/you-humble/motorcycle-registry/internal/repository/motorcycle"
	service "github.com/you-humble/motorcycle-registry/internal/service/motorcycle"
	"github.com/you-humble/motorcycle-registry/platform/db/migrator"
	"github.com/you-humble/motorcycle-registry/platform/logger"
	pgtc "github.com/you-humble/motorcycle-registry/platform/testcontainers/postgres"
)

const (
	pgUser       = "motorcycle-service-user"
	pgPass       = "M0t0_c4t_pw"
	pgDB         = "motorcycle-db"
	migrationDir = "../../../migrations"
)

var (
	ctx context.Context

	pgC  *pgtc.Container
	pool *pgxpool.Pool

	repo service.MotorcycleRepository
)

func TestIntegration(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Motorcycle Repository Integration Suite")
}

var _ = BeforeSuite(func() {
	ctx = context.Background()
	logger.SetNopLogger()

	By("starting postgres container")
	var err error
	pgC, err = pgtc.NewContainer(ctx,
		pgtc.WithDatabase(pgDB),
		pgtc.WithAuth(pgUser, pgPass),
		pgtc.WithLogger(logger.L()),
	)
	Expect(err).NotTo(HaveOccurred())
	pool = pgC.Pool()

	By("running migrations twice to prove they are idempotent")
	m := migrator.NewMigrator(stdlib.OpenDBFromPool(pool), migrationDir)
	Expect(m.Up()).To(Succeed())
	Expect(m.Up()).To(Succeed())
	version, err := m.Version()
	Expect(err).NotTo(HaveOccurred())
	Expect(version).To(BeNumerically(">=", 1))
	Expect(m.Close()).To(Succeed())

	repo = repository.NewMotorcycleRepository(pool)
})

var _ = AfterSuite(func() {
	if pgC != nil {
		_ = pgC.Terminate(ctx)
	}
})

var _ = BeforeEach(func() {
	By("cleaning motorcycle table")
	_, err := pool.Exec(ctx, "TRUNCATE TABLE vehicle.motorcycle RESTART IDENTITY")
	Expect(err).NotTo(HaveOccurred())
})

func newMotorcycle(vin string) *model.Motorcycle {
	return &model.Motorcycle{
		VIN:            vin,
		MotorcycleType: gofakeit.RandomString([]string{"cruiser", "sport", "touring", "scooter"}),
		OdometerValue:  gofakeit.Float64Range(0, 100000),
		OdometerUnit:   gofakeit.RandomString([]string{"km", "mi"}),
		IsElectric:     gofakeit.Bool(),
		NumberOfSeats:  gofakeit.IntRange(1, 2),
	}
}

var _ = Describe("Motorcycle repository", func() {
	Context("Create + MotorcycleByVIN", func() {
		It("assigns an id and reads the row back by vin", func() {
			in := newMotorcycle("VIN123")

			created, err := repo.Create(ctx, in)
			Expect(err).NotTo(HaveOccurred())
			Expect(created.ID).To(BeNumerically(">", 0))

			got, err := repo.MotorcycleByVIN(ctx, "VIN123")
			Expect(err).NotTo(HaveOccurred())
			in.ID = created.ID
			Expect(got).To(Equal(in))
		})

		It("rejects a duplicate vin and keeps the existing row", func() {
			first := newMotorcycle("VIN-DUP")
			_, err := repo.Create(ctx, first)
			Expect(err).NotTo(HaveOccurred())

			second := newMotorcycle("VIN-DUP")
			second.NumberOfSeats = 9
			_, err = repo.Create(ctx, second)
			Expect(err).To(MatchError(model.ErrMotorcycleConflict))

			got, err := repo.MotorcycleByVIN(ctx, "VIN-DUP")
			Expect(err).NotTo(HaveOccurred())
			Expect(got.NumberOfSeats).To(Equal(first.NumberOfSeats))
		})

		It("returns ErrMotorcycleNotFound for an unknown vin", func() {
			_, err := repo.MotorcycleByVIN(ctx, "NOPE")
			Expect(err).To(MatchError(model.ErrMotorcycleNotFound))
		})
	})

	Context("List", func() {
		It("orders by vin descending whatever the insertion order", func() {
			for _, vin := range []string{"B-2", "A-1", "D-4", "C-3"} {
				_, err := repo.Create(ctx, newMotorcycle(vin))
				Expect(err).NotTo(HaveOccurred())
			}

			list, err := repo.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			vins := lo.Map(list, func(m *model.Motorcycle, _ int) string { return m.VIN })
			Expect(vins).To(Equal([]string{"D-4", "C-3", "B-2", "A-1"}))
		})

		It("returns an empty slice for an empty table", func() {
			list, err := repo.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(BeEmpty())
		})
	})

	Context("Replace", func() {
		It("overwrites every column and keeps the stored id", func() {
			created, err := repo.Create(ctx, newMotorcycle("VIN-R"))
			Expect(err).NotTo(HaveOccurred())

			upd := newMotorcycle("VIN-R")
			upd.ID = created.ID + 1000

			got, err := repo.Replace(ctx, upd)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.ID).To(Equal(created.ID))
			Expect(got.OdometerValue).To(Equal(upd.OdometerValue))
			Expect(got.MotorcycleType).To(Equal(upd.MotorcycleType))
		})

		It("returns ErrMotorcycleNotFound for an unknown vin", func() {
			_, err := repo.Replace(ctx, newMotorcycle("NOPE"))
			Expect(err).To(MatchError(model.ErrMotorcycleNotFound))
		})
	})

	Context("Patch", func() {
		It("changes only the supplied columns", func() {
			created, err := repo.Create(ctx, &model.Motorcycle{
				VIN:            "VIN123",
				MotorcycleType: "cruiser",
				OdometerValue:  1000,
				OdometerUnit:   "km",
				IsElectric:     false,
				NumberOfSeats:  2,
			})
			Expect(err).NotTo(HaveOccurred())

			got, err := repo.Patch(ctx, model.PatchMotorcycleParams{
				VIN:           "VIN123",
				NumberOfSeats: lo.ToPtr(1),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(&model.Motorcycle{
				ID:             created.ID,
				VIN:            "VIN123",
				MotorcycleType: "cruiser",
				OdometerValue:  1000,
				OdometerUnit:   "km",
				IsElectric:     false,
				NumberOfSeats:  1,
			}))
		})

		It("with no fields returns the stored row", func() {
			created, err := repo.Create(ctx, newMotorcycle("VIN-E"))
			Expect(err).NotTo(HaveOccurred())

			got, err := repo.Patch(ctx, model.PatchMotorcycleParams{VIN: "VIN-E"})
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(created))
		})

		It("surfaces the check constraint as a validation error", func() {
			_, err := repo.Create(ctx, newMotorcycle("VIN-C"))
			Expect(err).NotTo(HaveOccurred())

			_, err = repo.Patch(ctx, model.PatchMotorcycleParams{
				VIN:           "VIN-C",
				NumberOfSeats: lo.ToPtr(-1),
			})
			Expect(err).To(MatchError(model.ErrValidation))
		})

		It("returns ErrMotorcycleNotFound for an unknown vin", func() {
			_, err := repo.Patch(ctx, model.PatchMotorcycleParams{VIN: "NOPE", IsElectric: lo.ToPtr(true)})
			Expect(err).To(MatchError(model.ErrMotorcycleNotFound))
		})
	})

	Context("DeleteByVIN", func() {
		It("deletes once and reports not found afterwards", func() {
			_, err := repo.Create(ctx, newMotorcycle("VIN-D"))
			Expect(err).NotTo(HaveOccurred())

			Expect(repo.DeleteByVIN(ctx, "VIN-D")).To(Succeed())
			Expect(repo.DeleteByVIN(ctx, "VIN-D")).To(MatchError(model.ErrMotorcycleNotFound))

			_, err = repo.MotorcycleByVIN(ctx, "VIN-D")
			Expect(err).To(MatchError(model.ErrMotorcycleNotFound))
		})
	})

	Context("storage failures", func() {
		It("reports ErrStorageUnavailable when the pool is closed", func() {
			closed, err := pgxpool.New(ctx, pgC.DSN())
			Expect(err).NotTo(HaveOccurred())
			closed.Close()

			_, err = repository.NewMotorcycleRepository(closed).List(ctx)
			Expect(err).To(MatchError(model.ErrStorageUnavailable))
			Expect(fmt.Sprint(err)).To(ContainSubstring("repository.List"))
		})

		It("does not report an int4 overflow as an outage", func() {
			m := newMotorcycle("VIN-OVERFLOW")
			m.NumberOfSeats = 3_000_000_000

			_, err := repo.Create(ctx, m)
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, model.ErrStorageUnavailable)).To(BeFalse())
		})
	})
})
