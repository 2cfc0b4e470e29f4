package service

import (
	"time"

	"smartdeal/internal/domain"

	"github.com/google/uuid"
)

// demoProducts is the starter catalog for fresh installations: eight
// current smartphones quoted on both retailers.
func demoProducts() []domain.Product {
	now := time.Now().UTC()

	return []domain.Product{
		{
			ID:            uuid.New(),
			Name:          "Samsung Galaxy S24 Ultra 5G",
			Brand:         "Samsung",
			Image:         "https://images.unsplash.com/photo-1610945415295-d9bbf067e59c?w=500",
			RAM:           "12GB",
			Storage:       "256GB",
			Processor:     "Snapdragon 8 Gen 3",
			Camera:        "200MP + 50MP + 12MP + 10MP",
			Display:       "6.8 inch Dynamic AMOLED 2X",
			Battery:       "5000mAh",
			AmazonPrice:   129999,
			AmazonURL:     "https://amazon.in",
			FlipkartPrice: 124999,
			FlipkartURL:   "https://flipkart.com",
			Rating:        4.6,
			Specifications: map[string]string{
				"os": "Android 14",
				"5g": "Yes",
			},
			Timestamp: now,
		},
		{
			ID:            uuid.New(),
			Name:          "iPhone 15 Pro Max",
			Brand:         "Apple",
			Image:         "https://images.unsplash.com/photo-1696446700182-d28e88c6190b?w=500",
			RAM:           "8GB",
			Storage:       "256GB",
			Processor:     "A17 Pro",
			Camera:        "48MP + 12MP + 12MP",
			Display:       "6.7 inch Super Retina XDR",
			Battery:       "4422mAh",
			AmazonPrice:   159900,
			AmazonURL:     "https://amazon.in",
			FlipkartPrice: 159900,
			FlipkartURL:   "https://flipkart.com",
			Rating:        4.7,
			Specifications: map[string]string{
				"os": "iOS 17",
				"5g": "Yes",
			},
			Timestamp: now,
		},
		{
			ID:            uuid.New(),
			Name:          "OnePlus 12",
			Brand:         "OnePlus",
			Image:         "https://images.unsplash.com/photo-1598327105666-5b89351aff97?w=500",
			RAM:           "16GB",
			Storage:       "512GB",
			Processor:     "Snapdragon 8 Gen 3",
			Camera:        "50MP + 64MP + 48MP",
			Display:       "6.82 inch AMOLED",
			Battery:       "5400mAh",
			AmazonPrice:   69999,
			AmazonURL:     "https://amazon.in",
			FlipkartPrice: 64999,
			FlipkartURL:   "https://flipkart.com",
			Rating:        4.5,
			Specifications: map[string]string{
				"os": "OxygenOS 14",
				"5g": "Yes",
			},
			Timestamp: now,
		},
		{
			ID:            uuid.New(),
			Name:          "Xiaomi 14 Pro",
			Brand:         "Xiaomi",
			Image:         "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=500",
			RAM:           "12GB",
			Storage:       "256GB",
			Processor:     "Snapdragon 8 Gen 3",
			Camera:        "50MP + 50MP + 50MP",
			Display:       "6.73 inch AMOLED",
			Battery:       "4880mAh",
			AmazonPrice:   79999,
			AmazonURL:     "https://amazon.in",
			FlipkartPrice: 76999,
			FlipkartURL:   "https://flipkart.com",
			Rating:        4.4,
			Specifications: map[string]string{
				"os": "MIUI 15",
				"5g": "Yes",
			},
			Timestamp: now,
		},
		{
			ID:            uuid.New(),
			Name:          "Google Pixel 8 Pro",
			Brand:         "Google",
			Image:         "https://images.unsplash.com/photo-1598618443855-232ee0f819f1?w=500",
			RAM:           "12GB",
			Storage:       "256GB",
			Processor:     "Google Tensor G3",
			Camera:        "50MP + 48MP + 48MP",
			Display:       "6.7 inch LTPO OLED",
			Battery:       "5050mAh",
			AmazonPrice:   106999,
			AmazonURL:     "https://amazon.in",
			FlipkartPrice: 109999,
			FlipkartURL:   "https://flipkart.com",
			Rating:        4.5,
			Specifications: map[string]string{
				"os": "Android 14",
				"5g": "Yes",
			},
			Timestamp: now,
		},
		{
			ID:            uuid.New(),
			Name:          "Vivo X100 Pro",
			Brand:         "Vivo",
			Image:         "https://images.unsplash.com/photo-1585060544812-6b45742d762f?w=500",
			RAM:           "16GB",
			Storage:       "512GB",
			Processor:     "MediaTek Dimensity 9300",
			Camera:        "50MP + 50MP + 50MP",
			Display:       "6.78 inch AMOLED",
			Battery:       "5400mAh",
			AmazonPrice:   89999,
			AmazonURL:     "https://amazon.in",
			FlipkartPrice: 86999,
			FlipkartURL:   "https://flipkart.com",
			Rating:        4.3,
			Specifications: map[string]string{
				"os": "Funtouch OS 14",
				"5g": "Yes",
			},
			Timestamp: now,
		},
		{
			ID:            uuid.New(),
			Name:          "Realme GT 5 Pro",
			Brand:         "Realme",
			Image:         "https://images.unsplash.com/photo-1580910051074-3eb694886505?w=500",
			RAM:           "12GB",
			Storage:       "256GB",
			Processor:     "Snapdragon 8 Gen 3",
			Camera:        "50MP + 50MP + 8MP",
			Display:       "6.78 inch AMOLED",
			Battery:       "5400mAh",
			AmazonPrice:   54999,
			AmazonURL:     "https://amazon.in",
			FlipkartPrice: 52999,
			FlipkartURL:   "https://flipkart.com",
			Rating:        4.4,
			Specifications: map[string]string{
				"os": "Realme UI 5",
				"5g": "Yes",
			},
			Timestamp: now,
		},
		{
			ID:            uuid.New(),
			Name:          "Oppo Find X7 Ultra",
			Brand:         "Oppo",
			Image:         "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=500",
			RAM:           "16GB",
			Storage:       "512GB",
			Processor:     "Snapdragon 8 Gen 3",
			Camera:        "50MP + 50MP + 50MP + 50MP",
			Display:       "6.82 inch AMOLED",
			Battery:       "5000mAh",
			AmazonPrice:   99999,
			AmazonURL:     "https://amazon.in",
			FlipkartPrice: 94999,
			FlipkartURL:   "https://flipkart.com",
			Rating:        4.5,
			Specifications: map[string]string{
				"os": "ColorOS 14",
				"5g": "Yes",
			},
			Timestamp: now,
		},
	}
}
