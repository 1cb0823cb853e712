package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMySQLDSN(t *testing.T) {
	got := normalizeMySQLDSN("jdbc:mysql://root:pw@db:3306/housemax?useSSL=false&serverTimezone=UTC&useUnicode=true", "", "")
	assert.Equal(t, "root:pw@tcp(db:3306)/housemax?charset=utf8mb4&loc=UTC&parseTime=true&tls=false", got)

	got = normalizeMySQLDSN("mysql://db:3306/housemax?user=a&password=b", "app", "")
	assert.Equal(t, "app:b@tcp(db:3306)/housemax?charset=utf8mb4&parseTime=true", got)

	native := "root:pw@tcp(db:3306)/housemax"
	assert.Equal(t, native, normalizeMySQLDSN(native, "x", "y"))
}
