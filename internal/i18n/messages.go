package i18n

var messages = map[string]map[string]string{
	LocaleEN: {
		"error.bad_request":             "Invalid request parameters",
		"error.not_found":               "Resource not found",
		"error.unauthorized":            "Please sign in first",
		"error.auth_header_missing":     "Authorization header is missing",
		"error.auth_header_invalid":     "Authorization header is invalid",
		"error.token_invalid":           "Session token is invalid or expired",
		"error.token_revoked":           "Session token has been signed out",
		"error.jwt_secret_missing":      "Token signing is not configured",
		"error.session_mismatch":        "Token does not belong to this session",
		"error.session_invalid":         "Session id is invalid",
		"error.rate_limited":            "Too many requests, please retry in %d seconds",
		"error.login_too_many":          "Too many sign-in attempts, please retry in %d seconds",
		"error.form_too_many":           "Too many submissions, please retry in %d seconds",
		"error.rate_limit_unavailable":  "Rate limiter is unavailable",
		"error.config_fetch_failed":     "Failed to load store settings",
		"error.product_not_found":       "Product not found",
		"error.product_fetch_failed":    "Failed to load products",
		"error.product_option_invalid":  "Selected size or color is not available",
		"error.category_fetch_failed":   "Failed to load categories",
		"error.price_range_invalid":     "Price range must look like min-max",
		"error.sort_invalid":            "Unsupported sort option",
		"error.cart_fetch_failed":       "Failed to load your cart",
		"error.cart_update_failed":      "Failed to update your cart",
		"error.cart_empty":              "Your cart is empty",
		"error.quantity_invalid":        "Quantity must be at least 1",
		"error.promo_invalid":           "Invalid promo code",
		"error.checkout_fetch_failed":   "Failed to load checkout",
		"error.checkout_update_failed":  "Failed to save checkout details",
		"error.checkout_not_started":    "Checkout has not been started",
		"error.checkout_step_invalid":   "This action is not available at the current checkout step",
		"error.checkout_validation":     "Please fill in all required fields",
		"error.order_submit_failed":     "Failed to process your order. Please try again.",
		"error.relay_failed":            "We could not deliver your submission. Please try again.",
		"error.relay_unavailable":       "Form delivery is temporarily unavailable",
		"error.order_not_found":         "Order not found",
		"error.order_fetch_failed":      "Failed to load your orders",
		"error.order_status_invalid":    "Unknown order status",
		"error.credentials_required":    "Email and password are required",
		"error.email_invalid":           "Please enter a valid email address",
		"error.login_failed":            "Sign in failed",
		"error.register_failed":         "Registration failed",
		"error.register_invalid":        "First name, last name, email and password are required",
		"error.user_not_found":          "No signed-in user for this session",
		"error.profile_update_failed":   "Failed to update profile",
		"error.logout_failed":           "Sign out failed",
		"error.wishlist_fetch_failed":   "Failed to load your wishlist",
		"error.wishlist_update_failed":  "Failed to update your wishlist",
		"error.review_invalid":          "Rating, name, title and review are required",
		"error.review_submit_failed":    "Failed to submit your review",
		"error.review_fetch_failed":     "Failed to load reviews",
		"error.contact_invalid":         "Name, email, subject and message are required",
		"error.contact_failed":          "Failed to send your message. Please try again.",
		"error.newsletter_invalid":      "Please enter a valid email address",
		"error.newsletter_failed":       "Subscription failed. Please try again.",
		"error.captcha_required":        "Please complete the captcha",
		"error.captcha_invalid":         "Captcha is incorrect",
		"error.captcha_unavailable":     "Captcha is not enabled",
		"error.captcha_generate_failed": "Failed to generate captcha",
		"message.order_placed":          "Order placed successfully!",
		"message.contact_sent":          "Thank you for contacting us! We'll get back to you shortly.",
		"message.newsletter_subscribed": "Thanks for subscribing!",
		"message.newsletter_already":    "You are already subscribed.",
		"message.review_submitted":      "Thank you for your review!",
		"message.promo_applied":         "Promo code applied",
		"message.promo_already_applied": "Promo code is already applied",
		"message.logged_out":            "Signed out",

		"email.order_confirmation.subject": "Your BG Collection order %s",
		"email.order_confirmation.body":    "Hi %s,\n\nThank you for shopping with BG Collection. Your order %s has been received.\n\n%s\n\nTotal: %s\nShipping to: %s\n\nWe will let you know when it ships.",
	},
	LocaleHI: {
		"error.bad_request":             "अनुरोध के पैरामीटर अमान्य हैं",
		"error.not_found":               "संसाधन नहीं मिला",
		"error.unauthorized":            "कृपया पहले साइन इन करें",
		"error.token_invalid":           "सत्र टोकन अमान्य है या समाप्त हो गया है",
		"error.token_revoked":           "सत्र टोकन से साइन आउट किया जा चुका है",
		"error.session_mismatch":        "टोकन इस सत्र का नहीं है",
		"error.rate_limited":            "बहुत अधिक अनुरोध, कृपया %d सेकंड बाद पुनः प्रयास करें",
		"error.login_too_many":          "बहुत अधिक साइन-इन प्रयास, कृपया %d सेकंड बाद पुनः प्रयास करें",
		"error.form_too_many":           "बहुत अधिक सबमिशन, कृपया %d सेकंड बाद पुनः प्रयास करें",
		"error.product_not_found":       "उत्पाद नहीं मिला",
		"error.cart_empty":              "आपकी कार्ट खाली है",
		"error.quantity_invalid":        "मात्रा कम से कम 1 होनी चाहिए",
		"error.promo_invalid":           "अमान्य प्रोमो कोड",
		"error.checkout_validation":     "कृपया सभी आवश्यक फ़ील्ड भरें",
		"error.order_submit_failed":     "आपका ऑर्डर संसाधित नहीं हो सका। कृपया पुनः प्रयास करें।",
		"error.relay_failed":            "आपका सबमिशन भेजा नहीं जा सका। कृपया पुनः प्रयास करें।",
		"error.order_not_found":         "ऑर्डर नहीं मिला",
		"error.email_invalid":           "कृपया एक मान्य ईमेल पता दर्ज करें",
		"error.captcha_required":        "कृपया कैप्चा पूरा करें",
		"error.captcha_invalid":         "कैप्चा गलत है",
		"message.order_placed":          "ऑर्डर सफलतापूर्वक दर्ज हुआ!",
		"message.contact_sent":          "संपर्क करने के लिए धन्यवाद! हम जल्द ही आपसे संपर्क करेंगे।",
		"message.newsletter_subscribed": "सदस्यता लेने के लिए धन्यवाद!",
		"message.review_submitted":      "आपकी समीक्षा के लिए धन्यवाद!",
		"message.promo_applied":         "प्रोमो कोड लागू हुआ",

		"email.order_confirmation.subject": "आपका BG Collection ऑर्डर %s",
		"email.order_confirmation.body":    "नमस्ते %s,\n\nBG Collection से खरीदारी के लिए धन्यवाद। आपका ऑर्डर %s प्राप्त हो गया है।\n\n%s\n\nकुल: %s\nडिलीवरी पता: %s",
	},
}
