package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/career-matcher/internal/types"
)

// Store reads catalogs from PostgreSQL. All queries are read-only: the
// scoring core never writes reference data.
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the catalog database.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// LoadAll fetches the four catalogs concurrently.
func (s *Store) LoadAll(ctx context.Context) (*Catalogs, error) {
	catalogs := &Catalogs{}

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		catalogs.Occupations, err = s.Occupations(ctx)
		return err
	})
	group.Go(func() error {
		var err error
		catalogs.Jobs, err = s.Jobs(ctx)
		return err
	})
	group.Go(func() error {
		var err error
		catalogs.Programs, err = s.Programs(ctx)
		return err
	})
	group.Go(func() error {
		var err error
		catalogs.Companies, err = s.Companies(ctx)
		return err
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return catalogs, nil
}

// Occupations fetches the occupation catalog.
func (s *Store) Occupations(ctx context.Context) ([]types.Occupation, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, title, sector, COALESCE(description, ''), required_years,
		        COALESCE(required_education, ''), COALESCE(required_skills, '{}'),
		        COALESCE(average_salary, '')
		 FROM occupations ORDER BY title`)
	if err != nil {
		return nil, fmt.Errorf("failed to query occupations: %w", err)
	}
	defer rows.Close()

	var occupations []types.Occupation
	for rows.Next() {
		var o types.Occupation
		if err := rows.Scan(&o.ID, &o.Title, &o.Sector, &o.Description,
			&o.RequiredYears, &o.RequiredEducation, &o.RequiredSkills, &o.AverageSalary); err != nil {
			return nil, fmt.Errorf("failed to scan occupation: %w", err)
		}
		occupations = append(occupations, o)
	}
	return occupations, rows.Err()
}

// Jobs fetches the job-posting catalog.
func (s *Store) Jobs(ctx context.Context) ([]types.JobPosting, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, title, COALESCE(company_name, ''), COALESCE(location, ''),
		        COALESCE(salary, ''), sector, required_years,
		        COALESCE(required_education, ''), COALESCE(required_skills, '{}')
		 FROM job_postings ORDER BY title`)
	if err != nil {
		return nil, fmt.Errorf("failed to query job postings: %w", err)
	}
	defer rows.Close()

	var jobs []types.JobPosting
	for rows.Next() {
		var j types.JobPosting
		if err := rows.Scan(&j.ID, &j.Title, &j.CompanyName, &j.Location, &j.Salary,
			&j.Sector, &j.RequiredYears, &j.RequiredEducation, &j.RequiredSkills); err != nil {
			return nil, fmt.Errorf("failed to scan job posting: %w", err)
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

// Programs fetches the education-program catalog.
func (s *Store) Programs(ctx context.Context) ([]types.EducationProgram, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, title, COALESCE(provider, ''), COALESCE(sector, ''),
		        COALESCE(duration, ''), COALESCE(cost, ''), COALESCE(skills, '{}')
		 FROM education_programs ORDER BY title`)
	if err != nil {
		return nil, fmt.Errorf("failed to query education programs: %w", err)
	}
	defer rows.Close()

	var programs []types.EducationProgram
	for rows.Next() {
		var p types.EducationProgram
		if err := rows.Scan(&p.ID, &p.Title, &p.Provider, &p.Sector,
			&p.Duration, &p.Cost, &p.Skills); err != nil {
			return nil, fmt.Errorf("failed to scan education program: %w", err)
		}
		programs = append(programs, p)
	}
	return programs, rows.Err()
}

// Companies fetches the company catalog.
func (s *Store) Companies(ctx context.Context) ([]types.Company, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, COALESCE(category, ''), COALESCE(location, ''),
		        COALESCE(required_experience, ''), COALESCE(required_education, ''),
		        COALESCE(employment_type, ''), COALESCE(skills, ''),
		        COALESCE(description, '')
		 FROM companies ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query companies: %w", err)
	}
	defer rows.Close()

	var companies []types.Company
	for rows.Next() {
		var c types.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.Category, &c.Location,
			&c.RequiredExperience, &c.RequiredEducation, &c.EmploymentType,
			&c.Skills, &c.Description); err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}
