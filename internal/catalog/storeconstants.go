/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package catalog

import dbmodel "github.com/asgardeo/cachengine/internal/system/database/model"

var (
	// queryGetProductListCount is the query to get the total count of products matching a name filter.
	queryGetProductListCount = dbmodel.DBQuery{
		ID:            "CATQ-PRD_MGT-01",
		Query:         `SELECT COUNT(*) as total FROM PRODUCT WHERE NAME LIKE $1`,
		PostgresQuery: `SELECT COUNT(*) as total FROM PRODUCT WHERE NAME ILIKE $1`,
	}

	// queryGetProductList is the query to get products with pagination.
	queryGetProductList = dbmodel.DBQuery{
		ID: "CATQ-PRD_MGT-02",
		Query: `SELECT PRODUCT_ID, SKU, NAME, DESCRIPTION, PRICE, STOCK FROM PRODUCT WHERE NAME LIKE $1 ` +
			`ORDER BY NAME, PRODUCT_ID LIMIT $2 OFFSET $3`,
		PostgresQuery: `SELECT PRODUCT_ID, SKU, NAME, DESCRIPTION, PRICE, STOCK FROM PRODUCT WHERE NAME ILIKE $1 ` +
			`ORDER BY NAME, PRODUCT_ID LIMIT $2 OFFSET $3`,
	}

	// queryCreateProduct is the query to create a new product.
	queryCreateProduct = dbmodel.DBQuery{
		ID:    "CATQ-PRD_MGT-03",
		Query: `INSERT INTO PRODUCT (PRODUCT_ID, SKU, NAME, DESCRIPTION, PRICE, STOCK) VALUES ($1, $2, $3, $4, $5, $6)`,
	}

	// queryGetProductByID is the query to get a product by id.
	queryGetProductByID = dbmodel.DBQuery{
		ID:    "CATQ-PRD_MGT-04",
		Query: `SELECT PRODUCT_ID, SKU, NAME, DESCRIPTION, PRICE, STOCK FROM PRODUCT WHERE PRODUCT_ID = $1`,
	}

	// queryCheckSKUConflict is the query to check whether another product uses the SKU.
	queryCheckSKUConflict = dbmodel.DBQuery{
		ID:    "CATQ-PRD_MGT-05",
		Query: `SELECT COUNT(*) as count FROM PRODUCT WHERE SKU = $1 AND PRODUCT_ID != $2`,
	}

	// queryUpdateProduct is the query to update a product.
	queryUpdateProduct = dbmodel.DBQuery{
		ID:    "CATQ-PRD_MGT-06",
		Query: `UPDATE PRODUCT SET SKU = $2, NAME = $3, DESCRIPTION = $4, PRICE = $5, STOCK = $6 WHERE PRODUCT_ID = $1`,
	}

	// queryDeleteProduct is the query to delete a product.
	queryDeleteProduct = dbmodel.DBQuery{
		ID:    "CATQ-PRD_MGT-07",
		Query: `DELETE FROM PRODUCT WHERE PRODUCT_ID = $1`,
	}
)
