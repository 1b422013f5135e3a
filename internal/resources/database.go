package resources

import "panelops/wfctl/internal/api"

// DBTypePostgreSQL and DBTypeMySQL are the engine names the panel accepts.
const (
	DBTypePostgreSQL = "postgresql"
	DBTypeMySQL      = "mysql"
)

// Databases manages databases and database users.
type Databases struct {
	client *Client
}

// Databases returns the database wrapper.
func (c *Client) Databases() Databases { return Databases{client: c} }

func (d Databases) List() ([]api.Record, error) {
	return d.client.List("list_dbs")
}

func (d Databases) ListUsers() ([]api.Record, error) {
	return d.client.List("list_db_users")
}

func (d Databases) Create(name, dbType, password string) {
	d.client.Do("create_db", map[string]any{
		"name":     name,
		"db_type":  dbType,
		"password": password,
	})
}

func (d Databases) Delete(name, dbType string) {
	d.client.Do("delete_db", map[string]any{"name": name, "db_type": dbType})
}

func (d Databases) CreateUser(username, password, dbType string) {
	d.client.Do("create_db_user", map[string]any{
		"username": username,
		"password": password,
		"db_type":  dbType,
	})
}

func (d Databases) DeleteUser(username, dbType string) {
	d.client.Do("delete_db_user", map[string]any{
		"username": username,
		"db_type":  dbType,
	})
}

func (d Databases) ChangeUserPassword(username, password, dbType string) {
	d.client.Do("change_db_user_password", map[string]any{
		"username": username,
		"password": password,
		"db_type":  dbType,
	})
}

func (d Databases) MakeUserOwner(username, database, dbType string) {
	d.client.Do("make_user_owner_of_db", map[string]any{
		"username": username,
		"database": database,
		"db_type":  dbType,
	})
}

func (d Databases) GrantPermissions(username, database, dbType string) {
	d.client.Do("grant_db_permissions", map[string]any{
		"username": username,
		"database": database,
		"db_type":  dbType,
	})
}

func (d Databases) RevokePermissions(username, database, dbType string) {
	d.client.Do("revoke_db_permissions", map[string]any{
		"username": username,
		"database": database,
		"db_type":  dbType,
	})
}

// EnableAddon enables a database addon such as postgis.
func (d Databases) EnableAddon(database, dbType, addon string) {
	d.client.Do("enable_addon", map[string]any{
		"database": database,
		"db_type":  dbType,
		"addon":    addon,
	})
}
