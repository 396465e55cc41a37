package recordstore

import (
	"fmt"

	"github.com/shashiranjanraj/storefront/config"
)

// Open boots the driver named by STORE_DRIVER.
// Call once at startup and pass the Store to the kernel.
func Open() (Store, error) {
	return OpenDriver(config.StoreDriver())
}

// OpenDriver boots a named driver using the remaining config keys.
func OpenDriver(name string) (Store, error) {
	switch name {
	case "memory":
		return NewMemory(), nil
	case "local", "":
		return NewLocal(config.StoreLocalRoot())
	case "redis":
		return NewRedis(config.RedisAddr(), config.RedisPassword(), config.StorePrefix())
	case "s3":
		return NewS3(S3Options{
			Bucket:   config.StorageS3Bucket(),
			Region:   config.StorageS3Region(),
			Key:      config.StorageS3Key(),
			Secret:   config.StorageS3Secret(),
			Endpoint: config.StorageS3Endpoint(),
			Prefix:   config.StorePrefix(),
		})
	case "sql":
		return NewSQL(config.DatabaseDriver(), config.DatabaseDSN())
	default:
		return nil, fmt.Errorf("%w %q (supported: memory, local, redis, s3, sql)", ErrUnknownDriver, name)
	}
}
