// ABOUTME: SQLite-based storage for accounts and generated websites
// ABOUTME: Provides persistence plus the atomic quota slot reservation

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"sitegen-api/core/domain"
	coreerrors "sitegen-api/core/errors"
)

// Client implements the WebsiteStorage and AccountStorage interfaces using SQLite
type Client struct {
	db       *sql.DB
	filePath string
}

// NewClient creates a new SQLite storage client
func NewClient(filePath string) (*Client, error) {
	if filePath == "" {
		filePath = "sitegen.db"
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	// A single writer avoids SQLITE_BUSY on concurrent reservations
	db.SetMaxOpenConns(1)

	client := &Client{
		db:       db,
		filePath: filePath,
	}

	if err := client.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return client, nil
}

// initSchema creates the tables if they don't exist
func (c *Client) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS accounts (
			id TEXT PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			plan TEXT NOT NULL,
			websites_created INTEGER NOT NULL DEFAULT 0,
			api_token TEXT NOT NULL UNIQUE,
			created_at INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS websites (
			id TEXT PRIMARY KEY,
			account_id TEXT NOT NULL REFERENCES accounts(id),
			slug TEXT NOT NULL UNIQUE,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			price TEXT NOT NULL,
			original_url TEXT NOT NULL,
			html TEXT NOT NULL,
			deploy_live_url TEXT,
			deploy_id TEXT,
			deploy_site_id TEXT,
			deploy_admin_url TEXT,
			views INTEGER NOT NULL DEFAULT 0,
			clicks INTEGER NOT NULL DEFAULT 0,
			is_active INTEGER NOT NULL DEFAULT 1,
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_websites_account ON websites(account_id);
	`

	_, err := c.db.Exec(query)
	return err
}

// CreateAccount persists a new account with its API token
func (c *Client) CreateAccount(ctx context.Context, account *domain.Account, token string) error {
	if account == nil {
		return errors.New("account cannot be nil")
	}

	query := `INSERT INTO accounts (id, email, plan, websites_created, api_token, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := c.db.ExecContext(ctx, query,
		account.ID, account.Email, account.Plan, account.WebsitesCreated, token, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to insert account: %w", err)
	}
	return nil
}

// GetAccountByToken resolves an API token to its account
func (c *Client) GetAccountByToken(ctx context.Context, token string) (*domain.Account, error) {
	if token == "" {
		return nil, &coreerrors.UnauthorizedError{Reason: "empty token"}
	}

	query := `SELECT id, email, plan, websites_created FROM accounts WHERE api_token = ?`
	return c.scanAccount(c.db.QueryRowContext(ctx, query, token))
}

// GetAccountByID retrieves an account by its ID
func (c *Client) GetAccountByID(ctx context.Context, id string) (*domain.Account, error) {
	query := `SELECT id, email, plan, websites_created FROM accounts WHERE id = ?`
	return c.scanAccount(c.db.QueryRowContext(ctx, query, id))
}

func (c *Client) scanAccount(row *sql.Row) (*domain.Account, error) {
	var account domain.Account
	err := row.Scan(&account.ID, &account.Email, &account.Plan, &account.WebsitesCreated)
	if err == sql.ErrNoRows {
		return nil, &coreerrors.NotFoundError{Resource: "account", ID: ""}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan account: %w", err)
	}
	return &account, nil
}

// ReserveWebsiteSlot atomically increments the usage counter, refusing when
// the increment would exceed limit. The conditional UPDATE is the single
// point of quota enforcement: two concurrent calls for the last slot resolve
// as one success and one QuotaExceededError.
func (c *Client) ReserveWebsiteSlot(ctx context.Context, accountID string, limit int) (int, error) {
	query := `UPDATE accounts SET websites_created = websites_created + 1
		WHERE id = ? AND websites_created < ?`
	result, err := c.db.ExecContext(ctx, query, accountID, limit)
	if err != nil {
		return 0, fmt.Errorf("failed to reserve website slot: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	if affected == 0 {
		account, err := c.GetAccountByID(ctx, accountID)
		if err != nil {
			return 0, err
		}
		return 0, &coreerrors.QuotaExceededError{Limit: limit, CurrentCount: account.WebsitesCreated}
	}

	var count int
	err = c.db.QueryRowContext(ctx, `SELECT websites_created FROM accounts WHERE id = ?`, accountID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to read usage counter: %w", err)
	}
	return count, nil
}

// InsertWebsite persists a newly created website record
func (c *Client) InsertWebsite(ctx context.Context, site *domain.Website) error {
	if site == nil {
		return errors.New("website cannot be nil")
	}

	var liveURL, deployID, siteID, adminURL sql.NullString
	if site.Deployment != nil {
		liveURL = sql.NullString{String: site.Deployment.LiveURL, Valid: true}
		deployID = sql.NullString{String: site.Deployment.DeployID, Valid: true}
		siteID = sql.NullString{String: site.Deployment.SiteID, Valid: true}
		adminURL = sql.NullString{String: site.Deployment.AdminURL, Valid: true}
	}

	query := `INSERT INTO websites (
			id, account_id, slug, title, description, price, original_url, html,
			deploy_live_url, deploy_id, deploy_site_id, deploy_admin_url,
			views, clicks, is_active, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := c.db.ExecContext(ctx, query,
		site.ID, site.AccountID, site.Slug,
		site.Product.Title, site.Product.Description, site.Product.Price, site.Product.OriginalURL,
		site.HTML, liveURL, deployID, siteID, adminURL,
		site.Views, site.Clicks, boolToInt(site.IsActive),
		site.CreatedAt.Unix(), site.UpdatedAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to insert website: %w", err)
	}
	return nil
}

// GetWebsiteByID retrieves a website by its ID
func (c *Client) GetWebsiteByID(ctx context.Context, id string) (*domain.Website, error) {
	return c.getWebsite(ctx, "id", id)
}

// GetWebsiteBySlug retrieves a website by its slug
func (c *Client) GetWebsiteBySlug(ctx context.Context, slug string) (*domain.Website, error) {
	return c.getWebsite(ctx, "slug", slug)
}

func (c *Client) getWebsite(ctx context.Context, column, value string) (*domain.Website, error) {
	query := fmt.Sprintf(`SELECT
			id, account_id, slug, title, description, price, original_url, html,
			deploy_live_url, deploy_id, deploy_site_id, deploy_admin_url,
			views, clicks, is_active, created_at, updated_at
		FROM websites WHERE %s = ?`, column)

	var site domain.Website
	var liveURL, deployID, siteID, adminURL sql.NullString
	var isActive int
	var createdAt, updatedAt int64

	err := c.db.QueryRowContext(ctx, query, value).Scan(
		&site.ID, &site.AccountID, &site.Slug,
		&site.Product.Title, &site.Product.Description, &site.Product.Price, &site.Product.OriginalURL,
		&site.HTML, &liveURL, &deployID, &siteID, &adminURL,
		&site.Views, &site.Clicks, &isActive, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, &coreerrors.NotFoundError{Resource: "website", ID: value}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan website: %w", err)
	}

	if liveURL.Valid {
		site.Deployment = &domain.DeploymentResult{
			LiveURL:  liveURL.String,
			DeployID: deployID.String,
			SiteID:   siteID.String,
			AdminURL: adminURL.String,
		}
	}
	site.IsActive = isActive != 0
	site.CreatedAt = time.Unix(createdAt, 0)
	site.UpdatedAt = time.Unix(updatedAt, 0)

	return &site, nil
}

// DeleteWebsite removes a website record
func (c *Client) DeleteWebsite(ctx context.Context, id string) error {
	_, err := c.db.ExecContext(ctx, `DELETE FROM websites WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete website: %w", err)
	}
	return nil
}

// IncrementViews atomically increments the view counter
func (c *Client) IncrementViews(ctx context.Context, id string) error {
	return c.incrementCounter(ctx, "views", id)
}

// IncrementClicks atomically increments the click counter
func (c *Client) IncrementClicks(ctx context.Context, id string) error {
	return c.incrementCounter(ctx, "clicks", id)
}

func (c *Client) incrementCounter(ctx context.Context, column, id string) error {
	query := fmt.Sprintf(`UPDATE websites SET %s = %s + 1, updated_at = ? WHERE id = ?`, column, column)
	result, err := c.db.ExecContext(ctx, query, time.Now().Unix(), id)
	if err != nil {
		return fmt.Errorf("failed to increment %s: %w", column, err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return &coreerrors.NotFoundError{Resource: "website", ID: id}
	}
	return nil
}

// Close closes the database connection
func (c *Client) Close() error {
	return c.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
